// Package scheduler drives timed gameplay sequencing on the frame loop.
//
// Continuations never run on their own goroutine: they fire from Advance, on
// the goroutine that owns the world, in due-time order.
package scheduler

import "container/heap"

// epsilon absorbs float drift from summing fixed frame deltas, so a 1s delay
// fires on frame 60 at 60 TPS rather than frame 61.
const epsilon = 1e-9

type timer struct {
	due      float64
	seq      uint64
	interval float64 // > 0 for repeating timers
	fn       func()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler is a level-scoped clock with a one-shot timer queue.
// It is not safe for concurrent use.
type Scheduler struct {
	now   float64
	dt    float64
	seq   uint64
	queue timerQueue
}

// New returns a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the seconds elapsed since the scheduler was created.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Dt returns the duration of the current frame in seconds.
func (s *Scheduler) Dt() float64 {
	return s.dt
}

// Pending returns the number of queued continuations.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After runs fn once, d seconds from now.
func (s *Scheduler) After(d float64, fn func()) {
	s.push(&timer{due: s.now + max(d, 0), fn: fn})
}

// Every runs fn every interval seconds, first after one interval.
func (s *Scheduler) Every(interval float64, fn func()) {
	if interval <= 0 {
		panic("scheduler: Every interval must be positive")
	}
	s.push(&timer{due: s.now + interval, interval: interval, fn: fn})
}

// Advance moves the clock forward by dt and runs every continuation that has
// come due. Continuations scheduled during the drain that are already due run
// in the same call.
func (s *Scheduler) Advance(dt float64) {
	s.dt = dt
	s.now += dt

	for len(s.queue) > 0 && s.queue[0].due <= s.now+epsilon {
		t := heap.Pop(&s.queue).(*timer)
		if t.interval > 0 {
			t.due += t.interval
			s.push(t)
		}
		t.fn()
	}
}

func (s *Scheduler) push(t *timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}
