package suggest

import "testing"

func TestClosest(t *testing.T) {
	candidates := []string{"accordion", "button", "icon-button", "select", "switch"}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "typo", input: "buton", want: "button"},
		{name: "case", input: "SELECT", want: "select"},
		{name: "dash dropped", input: "iconbutton", want: "icon-button"},
		{name: "too far", input: "carousel", want: ""},
		{name: "empty", input: "  ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Closest(tc.input, candidates); got != tc.want {
				t.Fatalf("Closest(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
