package service

import "sync"

// ControlSet tracks which per-user trigger controls are currently disabled.
// The browser original disabled the submit button for the duration of a
// fetch; here that side effect is an explicit state value owned by the
// orchestration boundary. One control per user id.
type ControlSet struct {
	mu       sync.Mutex
	disabled map[int]bool
}

func NewControlSet() *ControlSet {
	return &ControlSet{disabled: make(map[int]bool)}
}

// Acquire disables the control for id. It returns false when the control is
// already disabled, meaning a fetch for that id is still in flight.
func (c *ControlSet) Acquire(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disabled[id] {
		return false
	}
	c.disabled[id] = true
	return true
}

// Release re-enables the control for id. Callers defer this immediately
// after a successful Acquire so it runs on both outcome paths.
func (c *ControlSet) Release(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.disabled, id)
}

// Disabled reports whether the control for id is currently disabled.
func (c *ControlSet) Disabled(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled[id]
}
