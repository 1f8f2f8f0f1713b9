package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name    string
		err     *Error
		want    string
		message string
	}{
		{
			name:    "new",
			err:     New(ErrCodeInvalidInput, "total must be >= 0, got %d", -4),
			want:    "INVALID_INPUT: total must be >= 0, got -4",
			message: "total must be >= 0, got -4",
		},
		{
			name:    "wrapped",
			err:     Wrap(ErrCodeInvalidFormat, cause, "decode %s", "layout.toml"),
			want:    "INVALID_FORMAT: decode layout.toml: unexpected EOF",
			message: "decode layout.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := UserMessage(tt.err); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeInternal, cause, "write layout")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeInvalidAlign, "bad align"), ErrCodeInvalidAlign},
		{"outer code wins", Wrap(ErrCodeInvalidFormat, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidFormat},
		{"fmt wrapped", fmt.Errorf("resolve: %w", New(ErrCodeInvalidConfiguration, "no weight")), ErrCodeInvalidConfiguration},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %s) = false, want true", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Errorf("Is(err, %s) = true, want false", ErrCodeUnsupported)
			}
		})
	}
}

func TestUserMessagePlainError(t *testing.T) {
	if got := UserMessage(errors.New("boom")); got != "boom" {
		t.Errorf("UserMessage() = %q, want %q", got, "boom")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidFormat, http.StatusBadRequest},
		{ErrCodeInvalidAlign, http.StatusBadRequest},
		{ErrCodeInvalidPath, http.StatusBadRequest},
		{ErrCodeUnsupported, http.StatusBadRequest},
		{ErrCodeInvalidConfiguration, http.StatusUnprocessableEntity},
		{ErrCodeFileNotFound, http.StatusNotFound},
		{ErrCodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
