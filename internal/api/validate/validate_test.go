package validate

import "testing"

func TestID(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{"9999999999999999999999", 0, true},
	}
	for _, tc := range cases {
		got, err := ID(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ID(%q): err=%v wantErr=%v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ID(%q)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestDate(t *testing.T) {
	if _, err := Date("2001-06-10"); err != nil {
		t.Fatalf("valid date: %v", err)
	}
	for _, bad := range []string{"", "10/06/2001", "2001-13-40", "yesterday"} {
		if _, err := Date(bad); err == nil {
			t.Fatalf("Date(%q): want error", bad)
		}
	}
}

func TestRequired(t *testing.T) {
	if Required("name", "x") != nil {
		t.Fatalf("non-empty value flagged")
	}
	if Required("name", "  ") == nil {
		t.Fatalf("blank value not flagged")
	}
}
