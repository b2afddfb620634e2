package reminders

import (
	"testing"
	"time"

	"medtimer-companion/internal/domain/schedules"
)

// Toma de referencia: Aspirin lunes 2026-08-24 a las 09:00.
var testOcc = schedules.Occurrence{
	Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local),
	Name: "Aspirin",
	Time: schedules.TimeOfDay{Hour: 9, Minute: 0},
}

func at(h, m int) time.Time {
	return time.Date(2026, 8, 24, h, m, 0, 0, time.Local)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		now   time.Time
		lead  int
		taken bool
		want  Status
	}{
		{"well before lead", at(8, 30), 15, false, StatusUpcoming},
		{"inside lead", at(8, 50), 15, false, StatusImminent},
		{"exactly at lead boundary", at(8, 45), 15, false, StatusImminent},
		{"just past due", at(9, 1), 15, false, StatusMissed},
		{"exactly due", at(9, 0), 15, false, StatusMissed},
		{"taken overrides upcoming", at(8, 0), 15, true, StatusTaken},
		{"taken overrides missed", at(10, 0), 15, true, StatusTaken},
		{"wider lead flags earlier", at(8, 10), 60, false, StatusImminent},
		{"narrow lead", at(8, 50), 5, false, StatusUpcoming},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(testOcc, c.now, c.lead, c.taken)
			if got != c.want {
				t.Fatalf("Classify(now=%v lead=%d taken=%v) = %v, want %v",
					c.now.Format("15:04"), c.lead, c.taken, got, c.want)
			}
		})
	}
}

func TestMinutesUntil_KeepsFraction(t *testing.T) {
	now := at(8, 59).Add(30 * time.Second)
	mins := MinutesUntil(testOcc, now)
	if mins <= 0.4 || mins >= 0.6 {
		t.Fatalf("expected ~0.5 minutes, got %v", mins)
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{at(8, 18), "42m"},
		{at(8, 59), "1m"},
		{at(7, 55), "1h 05m"},
		{time.Date(2026, 8, 23, 9, 0, 0, 0, time.Local), "24h 00m"},
		{at(9, 30), ""}, // vencida: sin countdown
	}
	for _, c := range cases {
		if got := Countdown(testOcc, c.now); got != c.want {
			t.Fatalf("Countdown(now=%v) = %q, want %q", c.now, got, c.want)
		}
	}
}

func TestSettings_Bounds(t *testing.T) {
	s := NewSettings()
	if s.LeadMinutes() != DefaultLeadMinutes {
		t.Fatalf("default lead = %d", s.LeadMinutes())
	}

	for _, n := range []int{0, -5, 61, 1000} {
		if err := s.SetLeadMinutes(n); err == nil {
			t.Fatalf("SetLeadMinutes(%d) should fail", n)
		}
		if s.LeadMinutes() != DefaultLeadMinutes {
			t.Fatalf("rejected set must keep prior value, got %d", s.LeadMinutes())
		}
	}

	for _, n := range []int{1, 30, 60} {
		if err := s.SetLeadMinutes(n); err != nil {
			t.Fatalf("SetLeadMinutes(%d): %v", n, err)
		}
		if s.LeadMinutes() != n {
			t.Fatalf("lead = %d, want %d", s.LeadMinutes(), n)
		}
	}
}
