package fibonacci

import "testing"

func TestValues(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{0, 0}, {1, 1}, {2, 1}, {10, 55}, {20, 6765}, {30, 832040},
	}
	for _, tc := range tests {
		if got := Naive(tc.n); got != tc.want {
			t.Errorf("Naive(%d): got %d, want %d", tc.n, got, tc.want)
		}
		if got := Fast(tc.n); got != tc.want {
			t.Errorf("Fast(%d): got %d, want %d", tc.n, got, tc.want)
		}
	}

	// Beyond the reach of the naive version in reasonable time.
	if got := Fast(70); got != 190392490709135 {
		t.Errorf("Fast(70): got %d, want 190392490709135", got)
	}
}

func TestBench(t *testing.T) {
	for _, r := range Bench() {
		if !r.OK() {
			t.Errorf("%s:%s: got %d, want %d", r.Suite, r.Test, r.Value, r.Want)
		}
	}
}
