package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in   string
		want uiMode
	}{
		{"", uiAuto},
		{"auto", uiAuto},
		{"ON", uiOn},
		{" off ", uiOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("readUIMode(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestUIModeEnabled(t *testing.T) {
	for _, tty := range []bool{false, true} {
		if !uiOn.enabled(tty) || uiOff.enabled(tty) {
			t.Fatalf("explicit modes must ignore the terminal (tty=%v)", tty)
		}
		if uiAuto.enabled(tty) != tty {
			t.Fatalf("auto must follow the terminal (tty=%v)", tty)
		}
	}
}
