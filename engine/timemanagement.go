package engine

import "time"

// CancellationToken is the cooperative stop flag. The search polls it
// at every recursive entry; StopSearch and the hard timer set it.
type CancellationToken struct {
	active bool
}

func (ct *CancellationToken) Cancel() {
	ct.active = true
}

func (ct *CancellationToken) IsCancellationRequested() bool {
	return ct.active
}

type timeManager struct {
	start    time.Time
	softTime time.Duration
	ct       *CancellationToken
	timer    *time.Timer
}

// newTimeManager arms a hard timer that cancels the token when the
// budget runs out. A zero limit means no clock at all.
func newTimeManager(limit time.Duration, ct *CancellationToken) *timeManager {
	var tm = &timeManager{
		start:    time.Now(),
		softTime: limit,
		ct:       ct,
	}
	if limit > 0 {
		tm.timer = time.AfterFunc(limit, func() {
			ct.Cancel()
		})
	}
	return tm
}

func (tm *timeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// IsSoftTimeout is polled between iterations. Between root moves and at
// every recursive entry the search polls the token instead, which the
// hard timer cancels at the same limit; there is no preemption mid-move.
func (tm *timeManager) IsSoftTimeout() bool {
	return tm.softTime > 0 && time.Since(tm.start) >= tm.softTime
}

func (tm *timeManager) Close() {
	if t := tm.timer; t != nil {
		t.Stop()
	}
}
