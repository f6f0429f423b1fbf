package ui

import "testing"

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", in, got, want)
		}
	}
}
