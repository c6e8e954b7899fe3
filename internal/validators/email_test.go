package validators

import "testing"

func TestIsPlausibleEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"a@b", true},
		{"janeexample.com", false},
		{"@example.com", false},
		{"jane@", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsPlausibleEmail(tc.email); got != tc.want {
			t.Errorf("IsPlausibleEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
