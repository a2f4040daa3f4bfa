package scaledstyle

import "sync"

// Display is an in-memory Window. Notifications are dispatched
// synchronously, in subscription order, on the goroutine calling Resize.
type Display struct {
	mu     sync.Mutex
	size   Size
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Size)
}

// NewDisplay returns a display with an initial window size.
func NewDisplay(initial Size) *Display {
	return &Display{size: initial}
}

// Size implements Window.
func (d *Display) Size() Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

// Subscribe implements Window.
func (d *Display) Subscribe(fn func(Size)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { d.unsubscribe(id) })
	}
}

func (d *Display) unsubscribe(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.subs {
		if s.id == id {
			d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (d *Display) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Resize sets the window size and notifies every subscriber.
func (d *Display) Resize(s Size) {
	d.mu.Lock()
	d.size = s
	subs := append([]subscription(nil), d.subs...)
	d.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}

// Rotate swaps width and height and notifies every subscriber.
func (d *Display) Rotate() {
	s := d.Size()
	d.Resize(Size{Width: s.Height, Height: s.Width})
}
