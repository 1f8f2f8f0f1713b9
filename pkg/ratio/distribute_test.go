package ratio

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/ratiosplit/pkg/errors"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		ratios   []int
		minimums []int
		want     []int
	}{
		{
			name:   "thirds round up front",
			total:  7,
			ratios: []int{1, 1, 1},
			want:   []int{3, 2, 2},
		},
		{
			name:   "weighted",
			total:  10,
			ratios: []int{1, 2},
			want:   []int{4, 6},
		},
		{
			name:     "minimum raises share",
			total:    10,
			ratios:   []int{1, 1},
			minimums: []int{6, 1},
			want:     []int{6, 4},
		},
		{
			name:     "zero minimum drops weight",
			total:    9,
			ratios:   []int{1, 1, 1},
			minimums: []int{1, 0, 1},
			want:     []int{5, 0, 4},
		},
		{
			name:     "empty minimums means none",
			total:    7,
			ratios:   []int{1, 1, 1},
			minimums: []int{},
			want:     []int{3, 2, 2},
		},
		{
			name:   "trailing zero ratio",
			total:  5,
			ratios: []int{1, 0},
			want:   []int{5, 0},
		},
		{
			name:   "leading zero ratio",
			total:  5,
			ratios: []int{0, 1},
			want:   []int{0, 5},
		},
		{
			name:   "zero total",
			total:  0,
			ratios: []int{1, 1},
			want:   []int{0, 0},
		},
		{
			name:   "single slot takes all",
			total:  13,
			ratios: []int{4},
			want:   []int{13},
		},
		{
			name:     "overshooting minimums leave unweighted slots at zero",
			total:    4,
			ratios:   []int{1, 1, 1},
			minimums: []int{1, 3, 0},
			want:     []int{2, 3, 0},
		},
		{
			name:     "unweighted slot keeps its minimum",
			total:    4,
			ratios:   []int{1, 0},
			minimums: []int{1, 3},
			want:     []int{4, 3},
		},
		{
			name:     "trailing zero ratio keeps minimum after rounding",
			total:    21,
			ratios:   []int{4, 3, 5, 3, 2, 0},
			minimums: []int{2, 2, 3, 3, 4, 4},
			want:     []int{5, 4, 6, 4, 4, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distribute(tt.total, tt.ratios, tt.minimums)
			if err != nil {
				t.Fatalf("Distribute() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Distribute(%d, %v, %v) = %v, want %v", tt.total, tt.ratios, tt.minimums, got, tt.want)
			}
		})
	}
}

func TestDistributeInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		ratios   []int
		minimums []int
	}{
		{"all zero ratios", []int{0, 0}, nil},
		{"no slots", nil, nil},
		{"all zero minimums", []int{1, 1}, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distribute(5, tt.ratios, tt.minimums)
			if err == nil {
				t.Fatalf("Distribute() = %v, want error", got)
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfiguration)
			}
		})
	}
}

func TestDistributeInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		ratios   []int
		minimums []int
	}{
		{"negative total", -3, []int{1}, nil},
		{"negative ratio", 3, []int{1, -1}, nil},
		{"short minimums", 3, []int{1, 1}, []int{1}},
		{"negative minimum", 3, []int{1, 1}, []int{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distribute(tt.total, tt.ratios, tt.minimums)
			if err == nil {
				t.Fatalf("Distribute() = %v, want error", got)
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestDistributeSumsToTotal(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for iter := 0; iter < 500; iter++ {
		n := rng.IntN(7) + 1
		ratios := make([]int, n)
		for i := range ratios {
			ratios[i] = rng.IntN(5) + 1
		}
		total := rng.IntN(100)

		got, err := Distribute(total, ratios, nil)
		if err != nil {
			t.Fatalf("Distribute(%d, %v) error = %v", total, ratios, err)
		}
		sum := 0
		for i, p := range got {
			if p < 0 {
				t.Fatalf("Distribute(%d, %v)[%d] = %d, want >= 0", total, ratios, i, p)
			}
			sum += p
		}
		if sum != total {
			t.Fatalf("sum(Distribute(%d, %v)) = %d (%v), want %d", total, ratios, sum, got, total)
		}
	}
}

func TestDistributeRespectsMinimums(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))

	for iter := 0; iter < 500; iter++ {
		n := rng.IntN(6) + 1
		ratios := make([]int, n)
		minimums := make([]int, n)
		sumMin := 0
		for i := range ratios {
			ratios[i] = rng.IntN(6)
			minimums[i] = rng.IntN(5) + 1
			sumMin += minimums[i]
		}
		ratios[rng.IntN(n)]++
		total := sumMin + rng.IntN(30)

		got, err := Distribute(total, ratios, minimums)
		if err != nil {
			t.Fatalf("Distribute(%d, %v, %v) error = %v", total, ratios, minimums, err)
		}
		for i, p := range got {
			if p < minimums[i] {
				t.Fatalf("Distribute(%d, %v, %v)[%d] = %d, want >= %d", total, ratios, minimums, i, p, minimums[i])
			}
		}
	}
}

func TestArith(t *testing.T) {
	t.Run("ceilDiv", func(t *testing.T) {
		tests := []struct{ n, d, want int }{
			{7, 3, 3},
			{6, 3, 2},
			{0, 3, 0},
			{-1, 3, 0},
			{-4, 3, -1},
		}
		for _, tt := range tests {
			if got := ceilDiv(tt.n, tt.d); got != tt.want {
				t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
			}
		}
	})

	t.Run("roundHalfEven", func(t *testing.T) {
		tests := []struct{ n, d, want int }{
			{1, 2, 0},
			{3, 2, 2},
			{5, 2, 2},
			{5, 3, 2},
			{4, 3, 1},
			{0, 7, 0},
		}
		for _, tt := range tests {
			if got := roundHalfEven(tt.n, tt.d); got != tt.want {
				t.Errorf("roundHalfEven(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
			}
		}
	})
}
