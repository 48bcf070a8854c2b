package device

import (
	"sync"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/sirupsen/logrus"
)

// Seconds missed by a late tick that are still delivered
const maxReplayedSeconds = 5

type Clock struct {
	lock         sync.RWMutex
	eventChannel chan event.TickerEvent

	refreshClockTicker *time.Ticker
	now                func() time.Time

	askDone chan bool
	done    chan bool
}

func NewClock() *Clock {
	clock := Clock{
		eventChannel: make(chan event.TickerEvent),
		now:          time.Now,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}
	return &clock
}

// Now returns the current wall clock sample
func (d *Clock) Now() face.TimeSample {
	return face.NewTimeSample(d.now())
}

func (d *Clock) Start() {
	logrus.Infof("Start clock device")

	// Tick just after each second boundary
	now := d.now()
	time.Sleep(now.Truncate(time.Second).Add(time.Second + 10*time.Millisecond).Sub(now))

	d.lock.Lock()
	defer d.lock.Unlock()
	d.refreshClockTicker = time.NewTicker(time.Second)

	go func() {
		last := d.now().Truncate(time.Second).Add(-time.Second)

		for loop := true; loop; {
			select {
			case <-d.refreshClockTicker.C:
				now := d.now().Truncate(time.Second)
				seconds, resync := secondsToDeliver(last, now)
				for _, second := range seconds {
					d.eventChannel <- event.TickerEvent{Data: event.TickerEventTickData{Sample: face.NewTimeSample(second), Resync: resync}}
					last = second
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

func (d *Clock) StopSendingEvent() {
	logrus.Infof("Stop clock device")
	d.lock.Lock()
	defer d.lock.Unlock()

	d.refreshClockTicker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Clock) EventChannel() chan event.TickerEvent {
	return d.eventChannel
}

// secondsToDeliver returns the wall seconds following last up to now, so a
// late tick doesn't skip the minute boundary. After a wall clock jump only now
// is delivered, flagged for a full resync.
func secondsToDeliver(last time.Time, now time.Time) ([]time.Time, bool) {
	if !now.After(last) {
		if last.Sub(now) > maxReplayedSeconds*time.Second {
			// Wall clock set backwards
			logrus.Infof("Clock moved back from %s to %s", last.Format(time.TimeOnly), now.Format(time.TimeOnly))
			return []time.Time{now}, true
		}
		return nil, false
	}

	gap := int(now.Sub(last) / time.Second)
	if gap > maxReplayedSeconds+1 {
		logrus.Infof("Clock jumped %d seconds", gap)
		return []time.Time{now}, true
	}

	seconds := make([]time.Time, 0, gap)
	for second := last.Add(time.Second); !second.After(now); second = second.Add(time.Second) {
		seconds = append(seconds, second)
	}
	if gap > 1 {
		logrus.Debugf("Replay %d missed seconds", gap-1)
	}
	return seconds, false
}
