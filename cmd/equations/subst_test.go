package main

import "testing"

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[string]string
		want string
	}{
		{"none", "1+2", nil, "1+2"},
		{"simple", "x+1", map[string]string{"x": "2"}, "(2)+1"},
		{"longest first", "x+xy", map[string]string{"x": "2", "xy": "3"}, "(2)+(3)"},
		{"case insensitive", "RATE*2", map[string]string{"rate": "5"}, "(5)*2"},
		{"word bounded", "abc+a", map[string]string{"a": "1"}, "abc+(1)"},
		{"expression value", "y*2", map[string]string{"y": "3+4"}, "(3+4)*2"},
		{"repeated", "n+n", map[string]string{"n": "7"}, "(7)+(7)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := substitute(c.src, c.vars); got != c.want {
				t.Errorf("substitute(%q, %v) = %q, want %q", c.src, c.vars, got, c.want)
			}
		})
	}
}
