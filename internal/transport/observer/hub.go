package observer

import (
	"sync"
	"sync/atomic"

	"neoncity/internal/city"
)

const subscriberBuffer = 8

type subscriber struct {
	id  string
	out chan city.FrameSnapshot
	sub atomic.Pointer[SubscribeMsg]
}

// Hub fans frame snapshots out to websocket sessions. Publish never
// blocks: a session whose buffer is full misses that frame.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]*subscriber

	published atomic.Uint64
	dropped   atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]*subscriber)}
}

func (h *Hub) Publish(snap city.FrameSnapshot) {
	h.published.Add(1)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.out <- snap:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *Hub) join(id string, sub SubscribeMsg) *subscriber {
	s := &subscriber{id: id, out: make(chan city.FrameSnapshot, subscriberBuffer)}
	s.sub.Store(&sub)
	h.mu.Lock()
	h.subs[id] = s
	h.mu.Unlock()
	return s
}

func (h *Hub) leave(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// Sessions is the number of live subscriptions.
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Published() uint64 {
	return h.published.Load()
}

// Dropped counts frames skipped because a session fell behind.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}
