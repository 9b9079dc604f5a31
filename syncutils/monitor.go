package syncutils

import (
	"sync"
)

// Monitor is a lock that is keyed on the identity of an arbitrary comparable
// token: all Monitors constructed over the same token share one exclusion
// scope, the way monitor-style synchronization keys on the guarded object
// itself rather than on a lock instance. It is not safe for recursive use.
type Monitor struct {
	token interface{}
}

// NewMonitor creates a Monitor guarding the given token. The token must be
// comparable; pointer tokens compare by identity.
func NewMonitor(token interface{}) *Monitor {
	return &Monitor{
		token: token,
	}
}

// Lock blocks the calling goroutine until no other Monitor holds the token.
func (m *Monitor) Lock() {
	monitors.acquire(m.token)
}

// Unlock releases the token. It is a run-time error if the token is not held
// on entry to Unlock.
func (m *Monitor) Unlock() {
	monitors.release(m.token)
}

// monitorTable tracks the tokens that are currently held. There is a single
// process-wide table because monitor exclusion is a property of the token's
// identity, not of any particular Monitor instance.
type monitorTable struct {
	heldTokens map[interface{}]struct{}
	tokensCond *sync.Cond
}

var monitors = newMonitorTable()

func newMonitorTable() *monitorTable {
	return &monitorTable{
		heldTokens: make(map[interface{}]struct{}),
		tokensCond: sync.NewCond(&sync.Mutex{}),
	}
}

func (t *monitorTable) acquire(token interface{}) {
	t.tokensCond.L.Lock()

	for {
		if _, isHeld := t.heldTokens[token]; !isHeld {
			break
		}

		t.tokensCond.Wait()
	}

	t.heldTokens[token] = struct{}{}

	t.tokensCond.L.Unlock()
}

func (t *monitorTable) release(token interface{}) {
	t.tokensCond.L.Lock()

	if _, isHeld := t.heldTokens[token]; !isHeld {
		t.tokensCond.L.Unlock()

		panic("Unlock called on token that is not locked")
	}

	delete(t.heldTokens, token)

	t.tokensCond.L.Unlock()
	t.tokensCond.Broadcast()
}
