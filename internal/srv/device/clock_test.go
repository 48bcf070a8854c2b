package device

import (
	"testing"
	"time"
)

func TestSecondsToDeliver(t *testing.T) {
	last := time.Date(2026, time.October, 17, 8, 59, 58, 0, time.UTC)

	tests := []struct {
		name       string
		now        time.Time
		wantCount  int
		wantResync bool
	}{
		{"next second", last.Add(time.Second), 1, false},
		{"same second", last, 0, false},
		{"small backward step", last.Add(-2 * time.Second), 0, false},
		{"late tick", last.Add(3 * time.Second), 3, false},
		{"forward jump", last.Add(time.Hour), 1, true},
		{"backward jump", last.Add(-time.Hour), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, resync := secondsToDeliver(last, tt.now)
			if len(seconds) != tt.wantCount {
				t.Fatalf("delivered %d seconds, want %d", len(seconds), tt.wantCount)
			}
			if resync != tt.wantResync {
				t.Errorf("resync = %t, want %t", resync, tt.wantResync)
			}
			if len(seconds) > 0 && !seconds[len(seconds)-1].Equal(tt.now) {
				t.Errorf("last delivered %s, want %s", seconds[len(seconds)-1], tt.now)
			}
		})
	}
}

func TestLateTickKeepsMinuteBoundary(t *testing.T) {
	last := time.Date(2026, time.October, 17, 8, 59, 58, 0, time.UTC)
	seconds, _ := secondsToDeliver(last, last.Add(4*time.Second))

	boundaries := 0
	for i, second := range seconds {
		if i > 0 && !second.After(seconds[i-1]) {
			t.Errorf("seconds not increasing: %s after %s", second, seconds[i-1])
		}
		if second.Second() == 0 {
			boundaries++
		}
	}
	if boundaries != 1 {
		t.Errorf("%d minute boundaries delivered, want 1", boundaries)
	}
}

func TestClockStartAlignsWithoutLocking(t *testing.T) {
	clock := NewClock()
	// Start waits about a second for the next boundary
	clock.now = func() time.Time { return time.Now().Truncate(time.Second) }

	started := make(chan bool)
	go func() {
		clock.Start()
		started <- true
	}()
	time.Sleep(100 * time.Millisecond)

	locked := make(chan bool)
	go func() {
		clock.lock.Lock()
		clock.lock.Unlock()
		locked <- true
	}()

	select {
	case <-locked:
	case <-time.After(500 * time.Millisecond):
		t.Errorf("clock locked while waiting for the second boundary")
	}

	<-started
	clock.StopSendingEvent()
}
