package store

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/core/event"
	"google.golang.org/protobuf/runtime/protoiface"
)

// Event is one emitted event with its KV attributes.
type Event struct {
	Type       string
	Attributes []event.Attribute
}

// MemEvents is an event.Service that records emitted events in memory so
// hosts and tests can inspect them.
type MemEvents struct {
	mu     sync.Mutex
	events []Event
}

var (
	_ event.Service = (*MemEvents)(nil)
	_ event.Manager = (*MemEvents)(nil)
)

// NewMemEvents creates an empty in-memory event service.
func NewMemEvents() *MemEvents {
	return &MemEvents{}
}

// EventManager implements event.Service.
func (m *MemEvents) EventManager(_ context.Context) event.Manager {
	return m
}

// Emit implements event.Manager for typed proto events. The engine itself
// emits only KV events; proto events are recorded by their concrete type.
func (m *MemEvents) Emit(_ context.Context, e protoiface.MessageV1) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{Type: fmt.Sprintf("%T", e)})
	return nil
}

// EmitKV implements event.Manager.
func (m *MemEvents) EmitKV(_ context.Context, eventType string, attrs ...event.Attribute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{Type: eventType, Attributes: attrs})
	return nil
}

// EmitNonConsensus implements event.Manager.
func (m *MemEvents) EmitNonConsensus(ctx context.Context, e protoiface.MessageV1) error {
	return m.Emit(ctx, e)
}

// Events returns a copy of all events emitted so far.
func (m *MemEvents) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Reset discards all recorded events.
func (m *MemEvents) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
