package schedules

import (
	"errors"
	"testing"
)

func TestParseWeekday_FullNamesAndPrefixes(t *testing.T) {
	cases := []struct {
		in   string
		want Weekday
	}{
		{"Monday", Monday},
		{"monday", Monday},
		{"MON", Monday},
		{"  tue ", Tuesday},
		{"Wednesday", Wednesday},
		{"thu", Thursday},
		{"Fri", Friday},
		{"saturday", Saturday},
		{"Sun", Sunday},
	}

	for _, c := range cases {
		got, err := ParseWeekday(c.in)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseWeekday(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseWeekday_Rejects(t *testing.T) {
	for _, in := range []string{"", "mo", "funday", "monday!", "lunes"} {
		if _, err := ParseWeekday(in); !errors.Is(err, ErrBadWeekday) {
			t.Fatalf("ParseWeekday(%q): expected ErrBadWeekday, got %v", in, err)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour != 9 || got.Minute != 5 {
		t.Fatalf("got %+v", got)
	}
	if got.String() != "09:05" {
		t.Fatalf("String() = %q", got.String())
	}

	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:30"} {
		if _, err := ParseTimeOfDay(in); !errors.Is(err, ErrBadTime) {
			t.Fatalf("ParseTimeOfDay(%q): expected ErrBadTime, got %v", in, err)
		}
	}
}

func TestTimeOfDay_Order(t *testing.T) {
	early := TimeOfDay{Hour: 8, Minute: 59}
	late := TimeOfDay{Hour: 9, Minute: 0}

	if !early.Before(late) {
		t.Fatal("08:59 should sort before 09:00")
	}
	if late.Before(early) {
		t.Fatal("09:00 should not sort before 08:59")
	}
}
