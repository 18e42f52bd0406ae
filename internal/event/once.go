// Package event provides a synchronous, name-keyed registry of one-shot listeners.
package event

// HandlerFunc receives the payload of an emitted event.
type HandlerFunc[T any] func(payload T)

// Once holds listeners that fire at most once. Handlers run on the emitting
// goroutine; the registry is not safe for concurrent use.
type Once[T any] struct {
	handlers map[string][]HandlerFunc[T]
}

// NewOnce returns an empty registry.
func NewOnce[T any]() *Once[T] {
	return &Once[T]{handlers: make(map[string][]HandlerFunc[T])}
}

// Once registers h for the next emission of name.
func (o *Once[T]) Once(name string, h HandlerFunc[T]) {
	if h == nil {
		return
	}
	o.handlers[name] = append(o.handlers[name], h)
}

// Emit calls and drops every listener registered for name, in registration
// order, and reports how many ran. Listeners registered by a handler wait
// for the next emission.
func (o *Once[T]) Emit(name string, payload T) int {
	handlers := o.handlers[name]
	if len(handlers) == 0 {
		return 0
	}
	delete(o.handlers, name)
	for _, h := range handlers {
		h(payload)
	}
	return len(handlers)
}

// Pending reports how many listeners wait for name.
func (o *Once[T]) Pending(name string) int {
	return len(o.handlers[name])
}
