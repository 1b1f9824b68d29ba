package grid

// Subscribe registers fn to be called on every TriggerChanged.
// Observers run synchronously, in registration order.
// The returned func removes the observer; calling it again is a no-op.
func (g *Grid[T]) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	g.nextSubID++
	id := g.nextSubID
	g.observers = append(g.observers, subscription{id: id, fn: fn})

	return func() {
		for i, s := range g.observers {
			if s.id == id {
				g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

// TriggerChanged notifies every observer that cell (x,y) changed.
// Element mutators must call it explicitly; the grid never detects
// changes made to an element's internal state.
func (g *Grid[T]) TriggerChanged(x, y int) {
	for _, s := range g.observers {
		s.fn(x, y)
	}
}

// Observers returns the number of registered observers.
func (g *Grid[T]) Observers() int {
	return len(g.observers)
}
