package doses_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"medtimer-companion/internal/adapters/storage/memory"
	"medtimer-companion/internal/domain/doses"
	"medtimer-companion/internal/domain/schedules"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var (
	day1 = date(2026, 8, 24)
	day2 = date(2026, 8, 25)
	day3 = date(2026, 8, 26)

	nineAM = schedules.TimeOfDay{Hour: 9, Minute: 0}
)

func newService() *doses.Service {
	return doses.NewService(memory.NewLedgerRepo())
}

func TestMarkTaken_RoundTrip(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	taken, err := svc.IsTaken(ctx, day1, "Aspirin", nineAM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Fatal("fresh ledger should report untaken")
	}

	if err := svc.MarkTaken(ctx, day1, "Aspirin", nineAM); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	taken, _ = svc.IsTaken(ctx, day1, "Aspirin", nineAM)
	if !taken {
		t.Fatal("IsTaken must be true right after MarkTaken")
	}
}

func TestMarkTaken_Idempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if err := svc.MarkTaken(ctx, day1, "Aspirin", nineAM); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.MarkTaken(ctx, day1, "Aspirin", nineAM); err != nil {
		t.Fatalf("second mark must also succeed: %v", err)
	}

	taken, _ := svc.IsTaken(ctx, day1, "Aspirin", nineAM)
	if !taken {
		t.Fatal("still taken after double mark")
	}
}

func TestMarkTaken_RejectsBlankName(t *testing.T) {
	svc := newService()
	if err := svc.MarkTaken(context.Background(), day1, "   ", nineAM); !errors.Is(err, doses.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIdentity_IsDateNameTimeTriple(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if err := svc.MarkTaken(ctx, day1, "Aspirin", nineAM); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Distinto día, distinto nombre o distinta hora => otra toma.
	others := []struct {
		d    time.Time
		name string
		tod  schedules.TimeOfDay
	}{
		{day2, "Aspirin", nineAM},
		{day1, "Metformin", nineAM},
		{day1, "Aspirin", schedules.TimeOfDay{Hour: 21, Minute: 0}},
	}
	for _, o := range others {
		taken, _ := svc.IsTaken(ctx, o.d, o.name, o.tod)
		if taken {
			t.Fatalf("unexpected taken for %v %s %s", o.d, o.name, o.tod)
		}
	}
}

func TestResetAll(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_ = svc.MarkTaken(ctx, day1, "Aspirin", nineAM)
	_ = svc.MarkTaken(ctx, day2, "Metformin", nineAM)

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range []time.Time{day1, day2} {
		taken, _ := svc.IsTaken(ctx, d, "Aspirin", nineAM)
		if taken {
			t.Fatal("IsTaken must be false right after ResetAll")
		}
	}
}

func TestResetWindow_OnlyClearsRange(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_ = svc.MarkTaken(ctx, day1, "Aspirin", nineAM)
	_ = svc.MarkTaken(ctx, day2, "Aspirin", nineAM)
	_ = svc.MarkTaken(ctx, day3, "Aspirin", nineAM)

	if err := svc.ResetWindow(ctx, day2, day2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range []struct {
		d    time.Time
		want bool
	}{
		{day1, true},
		{day2, false},
		{day3, true},
	} {
		taken, _ := svc.IsTaken(ctx, c.d, "Aspirin", nineAM)
		if taken != c.want {
			t.Fatalf("after windowed reset, taken(%v) = %v, want %v", c.d, taken, c.want)
		}
	}
}

func TestResetWindow_RejectsInvertedRange(t *testing.T) {
	svc := newService()
	if err := svc.ResetWindow(context.Background(), day3, day1); !errors.Is(err, doses.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestKey_Format(t *testing.T) {
	got := doses.Key(day1, "Aspirin", nineAM)
	if got != "2026-08-24|Aspirin|09:00" {
		t.Fatalf("key = %q", got)
	}
}
