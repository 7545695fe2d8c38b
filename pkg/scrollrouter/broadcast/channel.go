// Package broadcast provides the subscription channel used to announce
// active-route changes to navigation UI.
package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// Listener receives an emitted route.
type Listener func(route string)

type subscription struct {
	id uuid.UUID
	fn Listener
}

// Channel delivers emitted routes to every current subscriber, synchronously
// and in subscription order. The zero value is ready to use.
type Channel struct {
	mu   sync.Mutex
	subs []subscription
}

// New creates an empty Channel.
func New() *Channel {
	return &Channel{}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (c *Channel) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := uuid.New()

	c.mu.Lock()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(id) })
	}
}

func (c *Channel) remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// Emit delivers route to the subscribers registered when Emit was called.
// Listeners may subscribe or unsubscribe while being notified; the change
// applies from the next Emit.
func (c *Channel) Emit(route string) {
	c.mu.Lock()
	snapshot := make([]subscription, len(c.subs))
	copy(snapshot, c.subs)
	c.mu.Unlock()

	for _, s := range snapshot {
		s.fn(route)
	}
}

// Len returns the number of subscribers.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
