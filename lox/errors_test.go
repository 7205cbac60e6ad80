package lox

import "testing"

func TestErrorTextFormat(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{invalidToken(1, "\x00"), "[line 1] Error: Invalid Token: \x00"},
		{invalidToken(7, "trash"), "[line 7] Error: Invalid Token: trash"},
		{unterminatedString(2), "[line 2] Error: Unterminated string"},
		{unterminatedFloat(3), "[line 3] Error: Unterminated float"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
