// Package notify implements the storefront's transient notification store: an
// ordered sequence of toast messages with auto-expiry and a set of subscribers
// that are informed synchronously on every change.
//
// The broadcaster is an explicit service object. It is created once at startup
// and handed to every producer (cart, checkout, booking) by constructor
// injection; there is no package-level instance.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Type classifies a notification for display purposes.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

// DefaultDuration is how long a notification stays visible unless the caller
// overrides it. Zero means sticky: the notification persists until dismissed.
const DefaultDuration = 4 * time.Second

// Notification is one entry in the shared sequence. The broadcaster owns all
// notifications; callers receive copies and must not hold long-lived references.
type Notification struct {
	ID       string
	Type     Type
	Message  string
	Duration time.Duration
}

// Subscriber receives the full updated sequence whenever it changes.
// Subscribers are invoked with the broadcaster's lock held: they must return
// quickly and must not call back into the broadcaster.
type Subscriber func([]Notification)

// Broadcaster is the process-wide notification store.
//
// The UI is single-threaded, but auto-dismiss timers fire on their own
// goroutines, so the broadcaster serializes all mutation and subscriber
// delivery under a mutex. No subscriber ever observes a half-updated sequence
// and deliveries arrive in mutation order.
type Broadcaster struct {
	mu      sync.Mutex
	seq     []Notification
	subs    map[int]Subscriber
	nextSub int
	timers  map[string]*time.Timer
	closed  bool
	log     *zap.Logger
}

// New creates an empty broadcaster. Pass zap.NewNop() if logging is unwanted.
func New(log *zap.Logger) *Broadcaster {
	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{
		subs:   make(map[int]Subscriber),
		timers: make(map[string]*time.Timer),
		log:    log,
	}
}

// Publish appends a notification and informs every subscriber. When duration
// is positive an automatic Dismiss is scheduled after it elapses; a zero
// duration makes the notification sticky. The generated id is returned so the
// producer can dismiss early.
func (b *Broadcaster) Publish(message string, typ Type, duration time.Duration) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ""
	}

	id := uuid.NewString()
	b.seq = append(b.seq, Notification{
		ID:       id,
		Type:     typ,
		Message:  message,
		Duration: duration,
	})
	b.log.Debug("notification published",
		zap.String("id", id),
		zap.String("type", string(typ)),
		zap.Duration("duration", duration))

	if duration > 0 {
		b.timers[id] = time.AfterFunc(duration, func() {
			b.Dismiss(id)
		})
	}

	b.notifyLocked()
	return id
}

// Dismiss removes the notification with the given id and informs subscribers.
// Dismissing an id that is no longer present is a silent no-op, so explicit
// dismissal and the auto-expiry timer can race harmlessly.
func (b *Broadcaster) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}

	for i, n := range b.seq {
		if n.ID == id {
			b.seq = append(b.seq[:i], b.seq[i+1:]...)
			b.log.Debug("notification dismissed", zap.String("id", id))
			b.notifyLocked()
			return
		}
	}
}

// Subscribe registers fn to receive the full sequence on every change and
// returns a cancel function. After cancel returns, fn is never invoked again.
func (b *Broadcaster) Subscribe(fn Subscriber) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handle := b.nextSub
	b.nextSub++
	b.subs[handle] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, handle)
	}
}

// Notifications returns a copy of the current sequence, oldest first.
func (b *Broadcaster) Notifications() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Close stops every pending auto-dismiss timer and drops all subscribers.
// Publish and Dismiss become no-ops afterward.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
	b.subs = make(map[int]Subscriber)
	b.seq = nil
}

func (b *Broadcaster) snapshotLocked() []Notification {
	out := make([]Notification, len(b.seq))
	copy(out, b.seq)
	return out
}

// notifyLocked delivers the current sequence to every subscriber in handle
// order. Caller holds b.mu.
func (b *Broadcaster) notifyLocked() {
	if len(b.subs) == 0 {
		return
	}
	snap := b.snapshotLocked()
	for i := 0; i < b.nextSub; i++ {
		if fn, ok := b.subs[i]; ok {
			fn(snap)
		}
	}
}
