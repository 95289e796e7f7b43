package viewport

import "sync"

// DefaultNarrowWidth is the column count below which the layout is narrow.
const DefaultNarrowWidth = 120

// Observer publishes the narrow-viewport flag to its subscribers. It is
// safe for concurrent use.
type Observer struct {
	mu          sync.Mutex
	narrowWidth int
	narrow      bool
	nextID      int
	subscribers map[int]func(narrow bool)
}

// NewObserver returns an observer that considers widths below narrowWidth narrow.
func NewObserver(narrowWidth int) *Observer {
	if narrowWidth <= 0 {
		narrowWidth = DefaultNarrowWidth
	}
	return &Observer{
		narrowWidth: narrowWidth,
		subscribers: make(map[int]func(bool)),
	}
}

// Subscribe registers fn for narrow-flag changes and returns the function
// that removes it. fn is called immediately with the current flag.
func (o *Observer) Subscribe(fn func(narrow bool)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subscribers[id] = fn
	narrow := o.narrow
	o.mu.Unlock()

	fn(narrow)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subscribers, id)
			o.mu.Unlock()
		})
	}
}

// Update records a new width and notifies subscribers if the flag flipped.
func (o *Observer) Update(width int) {
	o.mu.Lock()
	narrow := width < o.narrowWidth
	if narrow == o.narrow {
		o.mu.Unlock()
		return
	}
	o.narrow = narrow
	fns := make([]func(bool), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(narrow)
	}
}

// Narrow reports the current flag.
func (o *Observer) Narrow() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.narrow
}
