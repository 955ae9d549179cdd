package event

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus[int]()
	var got []string

	bus.Subscribe(func(v int) { got = append(got, "a") })
	bus.Subscribe(func(v int) { got = append(got, "b") })
	bus.Publish(1)

	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("delivery order mismatch (-want +got):\n%s", diff)
	}
}

func TestBus_CancelIsIdempotent(t *testing.T) {
	bus := NewBus[int]()
	calls := 0

	cancel := bus.Subscribe(func(int) { calls++ })
	keep := bus.Subscribe(func(int) {})
	defer keep()

	cancel()
	cancel()

	if bus.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bus.Len())
	}
	bus.Publish(7)
	if calls != 0 {
		t.Errorf("cancelled subscriber was called %d times", calls)
	}
}

func TestBus_CancelDuringPublish(t *testing.T) {
	bus := NewBus[string]()
	calls := 0

	var cancel func()
	cancel = bus.Subscribe(func(string) {
		calls++
		cancel()
	})

	bus.Publish("first")
	bus.Publish("second")

	if calls != 1 {
		t.Errorf("self-cancelling subscriber called %d times, want 1", calls)
	}
	if bus.Len() != 0 {
		t.Errorf("Len() = %d, want 0", bus.Len())
	}
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewBus[int]()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cancel := bus.Subscribe(func(int) {})
			cancel()
		}()
		go func(v int) {
			defer wg.Done()
			bus.Publish(v)
		}(i)
	}
	wg.Wait()

	if bus.Len() != 0 {
		t.Errorf("Len() = %d after every subscriber cancelled, want 0", bus.Len())
	}
}
