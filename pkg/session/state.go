package session

import (
	"slices"
	"sync"
)

// State is the session-level lifecycle state.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Event drives the lifecycle.
type Event string

const (
	EventLogin        Event = "login"
	EventLogout       Event = "logout"
	EventExpire       Event = "expire"
	EventUnauthorized Event = "unauthorized"
)

// Transition is one observed state change.
type Transition struct {
	From  State
	To    State
	Event Event
}

// transitions is [from][event]to. Missing pairs leave the state unchanged.
var transitions = map[State]map[Event]State{
	StateAnonymous: {
		EventLogin: StateAuthenticated,
	},
	StateAuthenticated: {
		EventLogout:       StateAnonymous,
		EventExpire:       StateAnonymous,
		EventUnauthorized: StateAnonymous,
	},
}

type machine struct {
	mu        sync.Mutex
	current   State
	observers []func(Transition)
}

func newMachine() *machine {
	return &machine{current: StateAnonymous}
}

func (sm *machine) state() State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.current
}

func (sm *machine) observe(fn func(Transition)) {
	sm.mu.Lock()
	sm.observers = append(sm.observers, fn)
	sm.mu.Unlock()
}

// fire applies ev and notifies observers outside the lock. It reports
// whether the state changed.
func (sm *machine) fire(ev Event) (Transition, bool) {
	sm.mu.Lock()
	to, ok := transitions[sm.current][ev]
	if !ok {
		sm.mu.Unlock()
		return Transition{}, false
	}
	t := Transition{From: sm.current, To: to, Event: ev}
	sm.current = to
	observers := slices.Clone(sm.observers)
	sm.mu.Unlock()

	for _, fn := range observers {
		fn(t)
	}
	return t, true
}
