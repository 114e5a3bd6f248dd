package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		hex  string
	}{
		{"black", RGB(0, 0, 0), "#000000"},
		{"white", RGB(255, 255, 255), "#ffffff"},
		{"mixed", RGB(0x12, 0xab, 0x0f), "#12ab0f"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.hex {
				t.Errorf("Hex() = %q, expected %q", got, tc.hex)
			}
			parsed, ok := ParseHex(tc.hex)
			if !ok || parsed != tc.c {
				t.Errorf("ParseHex(%q) = %v, %v, expected %v", tc.hex, parsed, ok, tc.c)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, s := range []string{"", "#fff", "#gggggg", "1234567"} {
		if _, ok := ParseHex(s); ok {
			t.Errorf("ParseHex(%q) should fail", s)
		}
	}

	if c, ok := ParseHex("0b0b0f"); !ok || c != RGB(0x0b, 0x0b, 0x0f) {
		t.Errorf("ParseHex without # = %v, %v", c, ok)
	}
}
