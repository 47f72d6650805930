// Package notify keeps user-facing toast messages and fans them out to
// subscribers.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const DefaultTTL = 5 * time.Second

type Toast struct {
	ID      uuid.UUID `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

type EventType string

const (
	ToastShown     EventType = "toast_shown"
	ToastDismissed EventType = "toast_dismissed"
)

type Event struct {
	Type  EventType `json:"type"`
	Toast Toast     `json:"toast"`
}

type Subscriber struct {
	ID   string
	Send chan Event
}

func NewSubscriber() *Subscriber {
	return &Subscriber{ID: uuid.NewString(), Send: make(chan Event, 64)}
}

type Center struct {
	subscribers map[string]*Subscriber
	register    chan *Subscriber
	unregister  chan *Subscriber
	broadcast   chan Event

	mu     sync.RWMutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Center)

func WithTTL(ttl time.Duration) Option {
	return func(c *Center) { c.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

func NewCenter(opts ...Option) *Center {
	c := &Center{
		subscribers: make(map[string]*Subscriber),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan Event, 256),
		ttl:         DefaultTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run delivers events until ctx is done. Subscribers with a full buffer miss
// the event.
func (c *Center) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			for id, sub := range c.subscribers {
				delete(c.subscribers, id)
				close(sub.Send)
			}
			c.mu.Unlock()
			return

		case sub := <-c.register:
			c.mu.Lock()
			c.subscribers[sub.ID] = sub
			c.mu.Unlock()

		case sub := <-c.unregister:
			c.mu.Lock()
			if _, ok := c.subscribers[sub.ID]; ok {
				delete(c.subscribers, sub.ID)
				close(sub.Send)
			}
			c.mu.Unlock()

		case event := <-c.broadcast:
			c.mu.RLock()
			for _, sub := range c.subscribers {
				select {
				case sub.Send <- event:
				default:
				}
			}
			c.mu.RUnlock()
		}
	}
}

func (c *Center) Subscribe(sub *Subscriber) {
	c.register <- sub
}

func (c *Center) Unsubscribe(sub *Subscriber) {
	c.unregister <- sub
}

// Success shows a success toast. It satisfies the state layer's notifier.
func (c *Center) Success(message string) {
	c.show(LevelSuccess, message)
}

func (c *Center) Error(message string) {
	c.show(LevelError, message)
}

func (c *Center) show(level Level, message string) Toast {
	toast := Toast{ID: uuid.New(), Level: level, Message: message, Created: c.now()}

	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	c.mu.Unlock()

	c.publish(Event{Type: ToastShown, Toast: toast})
	return toast
}

// Active returns the toasts that are neither dismissed nor expired, oldest first.
func (c *Center) Active() []Toast {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if c.ttl <= 0 || now.Sub(t.Created) < c.ttl {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
	return append([]Toast(nil), kept...)
}

// Dismiss removes a toast. It reports whether the toast was still shown.
func (c *Center) Dismiss(id uuid.UUID) bool {
	c.mu.Lock()
	var (
		removed Toast
		found   bool
	)
	for i, t := range c.toasts {
		if t.ID == id {
			removed, found = t, true
			c.toasts = append(c.toasts[:i:i], c.toasts[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if found {
		c.publish(Event{Type: ToastDismissed, Toast: removed})
	}
	return found
}

// publish queues event for Run. The event is dropped when the queue is full,
// which also covers a center whose Run loop is not running.
func (c *Center) publish(event Event) {
	select {
	case c.broadcast <- event:
	default:
	}
}
