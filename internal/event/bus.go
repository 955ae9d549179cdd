// Package event provides a small subscription list used for page-wide signals
// (pointer presses, scroll offsets). Every subscription hands back a cancel
// function so owners can release it when they unmount.
package event

import "sync"

// Bus fans a value out to every current subscriber in subscription order.
//
// The dashboard only touches a bus from its Update loop. The mutex lets callers
// outside that loop, such as tests, subscribe and publish from other goroutines.
type Bus[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers fn and returns a cancel function. Cancel is safe to call
// more than once.
func (b *Bus[T]) Subscribe(fn func(T)) (cancel func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers v to a snapshot of the current subscribers, so handlers may
// cancel themselves (or subscribe others) while being called.
func (b *Bus[T]) Publish(v T) {
	b.mu.Lock()
	snapshot := make([]subscriber[T], len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
