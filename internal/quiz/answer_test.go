package quiz

import "testing"

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		user      string
		canonical string
		want      bool
	}{
		{"B", "B", true},
		{"b", "B", true},
		{" b ", "B", true},
		{"B", " b\t", true},
		{"b", "c", false},
		{"", "B", false},
		{"cache", "Cache", true},
		{"the cache", "cache", false}, // no partial matching
		{"10", "10", true},
		{"1e1", "10", false}, // no numeric normalization
	}

	for _, tt := range tests {
		if got := IsCorrect(tt.user, tt.canonical); got != tt.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.user, tt.canonical, got, tt.want)
		}
	}
}
