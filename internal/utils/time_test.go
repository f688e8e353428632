package utils

import "testing"

func TestFormatTime12h(t *testing.T) {
	cases := map[string]string{
		"09:00": "9:00 AM",
		"14:30": "2:30 PM",
		"00:15": "12:15 AM",
		"junk":  "junk",
	}
	for in, want := range cases {
		if got := FormatTime12h(in); got != want {
			t.Fatalf("FormatTime12h(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected parse error")
	}
	d, err := ParseDate(" 2026-03-15 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if FormatDate(d) != "2026-03-15" {
		t.Fatalf("round trip changed the date: %s", FormatDate(d))
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-03-15", "09:30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 || got.Day() != 15 {
		t.Fatalf("unexpected instant: %v", got)
	}
}
