package services

import "sync"

type ProgressEvent struct {
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

// ProgressTracker fans planning progress out to subscribers. Every run gets
// a generation token; publishes carrying a stale token are dropped, so an
// abandoned run can keep failing in the background without corrupting the
// progress of a newer run. Sends never block: a slow subscriber misses
// events rather than stalling the planner.
type ProgressTracker struct {
	mu         sync.Mutex
	current    ProgressEvent
	planning   bool
	generation uint64
	nextSubID  uint64
	subs       map[uint64]chan ProgressEvent
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{subs: make(map[uint64]chan ProgressEvent)}
}

// Begin claims the tracker for a new run and returns its generation token.
func (t *ProgressTracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.planning = true
	t.current = ProgressEvent{}
	return t.generation
}

func (t *ProgressTracker) Publish(gen uint64, fraction float64, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return
	}
	t.current = ProgressEvent{Fraction: fraction, Label: label}
	for _, ch := range t.subs {
		select {
		case ch <- t.current:
		default:
		}
	}
}

// Reset returns progress to zero. Called on both success and failure, so
// progress alone cannot distinguish "idle" from "just finished".
func (t *ProgressTracker) Reset(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return
	}
	t.planning = false
	t.current = ProgressEvent{}
	for _, ch := range t.subs {
		select {
		case ch <- t.current:
		default:
		}
	}
}

func (t *ProgressTracker) Snapshot() (ProgressEvent, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.planning
}

func (t *ProgressTracker) Subscribe() (<-chan ProgressEvent, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSubID
	t.nextSubID++
	ch := make(chan ProgressEvent, 16)
	t.subs[id] = ch
	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if _, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
