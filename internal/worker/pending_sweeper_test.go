package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/spinzone/backend/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitForSweeps(t *testing.T, ledger *testhelpers.LedgerStub, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for ledger.SweepCount() < want {
		select {
		case <-deadline:
			t.Fatalf("expected at least %d sweeps, got %d", want, ledger.SweepCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPendingSweeperSweeps(t *testing.T) {
	ledger := &testhelpers.LedgerStub{}
	ttl := 30 * time.Minute
	sweeper := NewPendingSweeper(ledger, 10*time.Millisecond, ttl, testLogger())

	before := time.Now()
	sweeper.Start(context.Background())
	waitForSweeps(t, ledger, 2)
	sweeper.Stop()

	cutoff := ledger.Cutoffs[0]
	expected := before.Add(-ttl)
	if cutoff.Before(expected.Add(-time.Second)) || cutoff.After(time.Now().Add(-ttl).Add(time.Second)) {
		t.Fatalf("cutoff %v not within expected window around %v", cutoff, expected)
	}

	count := ledger.SweepCount()
	time.Sleep(50 * time.Millisecond)
	if ledger.SweepCount() != count {
		t.Fatal("sweeper must not run after Stop")
	}
}

func TestPendingSweeperSurvivesErrors(t *testing.T) {
	ledger := &testhelpers.LedgerStub{
		SweepFn: func(context.Context, time.Time) (int64, error) {
			return 0, errors.New("sweep failed")
		},
	}
	sweeper := NewPendingSweeper(ledger, 10*time.Millisecond, time.Minute, testLogger())

	sweeper.Start(context.Background())
	waitForSweeps(t, ledger, 3)
	sweeper.Stop()
}

func TestPendingSweeperStopWithoutStart(t *testing.T) {
	sweeper := NewPendingSweeper(&testhelpers.LedgerStub{}, time.Minute, time.Minute, testLogger())
	sweeper.Stop()
}

func TestPendingSweeperDefaults(t *testing.T) {
	sweeper := NewPendingSweeper(&testhelpers.LedgerStub{}, 0, 0, testLogger())
	if sweeper.interval != time.Minute {
		t.Fatalf("unexpected default interval %v", sweeper.interval)
	}
	if sweeper.ttl != 30*time.Minute {
		t.Fatalf("unexpected default ttl %v", sweeper.ttl)
	}
}

func TestPendingSweeperContextCancellation(t *testing.T) {
	ledger := &testhelpers.LedgerStub{}
	sweeper := NewPendingSweeper(ledger, 10*time.Millisecond, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)
	waitForSweeps(t, ledger, 1)
	cancel()
	time.Sleep(30 * time.Millisecond)

	count := ledger.SweepCount()
	time.Sleep(50 * time.Millisecond)
	if ledger.SweepCount() != count {
		t.Fatal("sweeper must halt when context is cancelled")
	}
	sweeper.Stop()
}
