// Package ui models the page interactions (clicks, scrolling, resizing, form
// submission) as events dispatched to explicitly registered handlers.
package ui

import (
	"context"
	"net/url"
	"sync"
)

type EventType string

const (
	Click  EventType = "click"
	Scroll EventType = "scroll"
	Resize EventType = "resize"
	Submit EventType = "submit"
)

type Event struct {
	Type    EventType
	Target  string
	ScrollY int
	Width   int
	Form    url.Values
}

type Handler func(ctx context.Context, ev Event) error

// Surface is anything handlers can be registered against.
type Surface interface {
	On(t EventType, target string, h Handler)
}

type registration struct {
	target  string
	handler Handler
}

// Dispatcher routes events to handlers registered for their type and target.
// An empty registration target matches every target.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]registration
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]registration)}
}

func (d *Dispatcher) On(t EventType, target string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = append(d.handlers[t], registration{target: target, handler: h})
}

// Dispatch runs the matching handlers in registration order and stops at the
// first error. Events nobody listens for are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	d.mu.RLock()
	regs := d.handlers[ev.Type]
	matched := make([]Handler, 0, len(regs))
	for _, r := range regs {
		if r.target == "" || r.target == ev.Target {
			matched = append(matched, r.handler)
		}
	}
	d.mu.RUnlock()

	for _, h := range matched {
		if err := h(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Handles reports whether an event of type t aimed at target has a listener.
func (d *Dispatcher) Handles(t EventType, target string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.handlers[t] {
		if r.target == "" || r.target == target {
			return true
		}
	}
	return false
}
