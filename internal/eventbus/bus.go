// Package eventbus carries media notifications (playback state changes,
// end of media) from player goroutines to whoever reacts on the UI side.
package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"audiology/internal/logger"

	"github.com/google/uuid"
)

const (
	TypeVideoState = "video.state"
	TypeEndOfMedia = "tone.end_of_media"
)

type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

type handlerFunc struct {
	id string
	fn func(Event)
}

func (h *handlerFunc) Handle(event Event) { h.fn(event) }
func (h *handlerFunc) GetID() string      { return h.id }

// HandlerFunc wraps fn in an EventHandler with a fresh unique ID.
func HandlerFunc(fn func(Event)) EventHandler {
	return &handlerFunc{id: uuid.NewString(), fn: fn}
}

type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	logger      logger.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		logger:      log,
		ctx:         ctx,
		cancel:      cancel,
	}

	bus.startWorker()
	return bus
}

// Publish queues event without blocking. Events are dropped when the
// buffer is full or the bus has shut down; publishers run inside audio
// callbacks and must never stall.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case <-b.ctx.Done():
		return
	default:
	}

	select {
	case b.buffer <- event:
	default:
		b.logger.Debug("EventBus", "event dropped", map[string]interface{}{
			"type":   event.Type,
			"source": event.Source,
		})
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops dispatching and waits for the worker to exit.
func (b *Bus) Shutdown() {
	b.closeOnce.Do(func() {
		b.cancel()
		b.wg.Wait()
	})
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				return
			}
		}
	}()
}

// dispatchEvent delivers in subscription order on the worker goroutine so
// handlers observe events in publish order.
func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.safeHandle(handler, event)
	}
}

func (b *Bus) safeHandle(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"type":       event.Type,
				"handler_id": h.GetID(),
			})
		}
	}()
	h.Handle(event)
}
