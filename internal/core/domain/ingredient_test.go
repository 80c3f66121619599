package domain

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Salt", "Salt"},
		{"  salt  ", "salt"},
		{"sea   salt", "sea salt"},
		{"\tolive\n oil ", "olive oil"},
		{"   ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
