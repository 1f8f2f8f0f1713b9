package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	rsio "github.com/matzehuels/ratiosplit/pkg/io"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
)

// defaultTerminalWidth is used when stdout is not a terminal.
const defaultTerminalWidth = 80

// parseEdgeSpec parses an --edge value.
//
// A spec is a comma-separated list of key=value pairs:
//
//	size=3                 fixed edge
//	ratio=2,min=1,name=a   flexible edge
//
// "minimum_size" is accepted as a long form of "min". Unset keys take the
// same defaults as layout files (ratio 1, min 1).
func parseEdgeSpec(spec string) (rsio.NamedEdge, error) {
	var (
		ne       = rsio.NamedEdge{Edge: ratio.Flex(ratio.DefaultRatio)}
		flexKeys []string
	)
	if strings.TrimSpace(spec) == "" {
		return ne, errors.New(errors.ErrCodeInvalidInput, "empty edge spec")
	}

	for _, part := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return ne, errors.New(errors.ErrCodeInvalidInput, "edge spec %q: expected key=value, got %q", spec, part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if key == "name" {
			ne.Name = value
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return ne, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge spec %q: %s", spec, key)
		}
		switch key {
		case "size":
			if n < 0 {
				return ne, errors.New(errors.ErrCodeInvalidInput, "edge spec %q: size must be >= 0", spec)
			}
			ne.Size = &n
		case "ratio":
			if n < 1 {
				return ne, errors.New(errors.ErrCodeInvalidInput, "edge spec %q: ratio must be >= 1", spec)
			}
			ne.Ratio = n
			flexKeys = append(flexKeys, key)
		case "min", "minimum_size":
			if n < 0 {
				return ne, errors.New(errors.ErrCodeInvalidInput, "edge spec %q: min must be >= 0", spec)
			}
			ne.MinimumSize = n
			flexKeys = append(flexKeys, key)
		default:
			return ne, errors.New(errors.ErrCodeInvalidInput, "edge spec %q: unknown key %q", spec, key)
		}
	}

	if ne.Size != nil && len(flexKeys) > 0 {
		return ne, errors.New(errors.ErrCodeInvalidInput,
			"edge spec %q: size cannot be combined with %s", spec, strings.Join(flexKeys, ", "))
	}
	return ne, nil
}

// parseEdgeSpecs parses every --edge value in order.
func parseEdgeSpecs(specs []string) ([]rsio.NamedEdge, error) {
	edges := make([]rsio.NamedEdge, 0, len(specs))
	for _, s := range specs {
		e, err := parseEdgeSpec(s)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// terminalWidth returns the width of the terminal on stdout, or
// defaultTerminalWidth if it cannot be determined.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
