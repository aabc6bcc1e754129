package broker

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	topic string
	key   string
	value []byte
	ts    time.Time
}

// MemoryBus is an in-process bus. Every consumer group keeps its own cursor
// over a single append-only log, so records come back in publish order
// across topics.
type MemoryBus struct {
	mu         sync.Mutex
	log        []memoryEntry
	delivered  map[string]int
	committed  map[string]int64
	notify     chan struct{}
	publishErr error
	closed     bool
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		delivered: make(map[string]int),
		committed: make(map[string]int64),
		notify:    make(chan struct{}),
	}
}

// Publish appends a record to the log
func (b *MemoryBus) Publish(ctx context.Context, topic, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if b.publishErr != nil {
		return b.publishErr
	}

	value := make([]byte, len(data))
	copy(value, data)
	b.log = append(b.log, memoryEntry{topic: topic, key: key, value: value, ts: time.Now()})

	close(b.notify)
	b.notify = make(chan struct{})
	return nil
}

// Close rejects further publishes and wakes blocked pollers
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.notify)
		b.notify = make(chan struct{})
	}
	return nil
}

// SetPublishError makes every subsequent Publish fail with err; nil clears it
func (b *MemoryBus) SetPublishError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.publishErr = err
}

// Published returns every record published to topic so far
func (b *MemoryBus) Published(topic string) []*Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []*Record
	for i, e := range b.log {
		if e.topic == topic {
			out = append(out, NewRecord(e.topic, e.key, e.value, int64(i), e.ts, nil))
		}
	}
	return out
}

// Committed returns how many records group has acknowledged
func (b *MemoryBus) Committed(group string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.committed[group]
}

// Subscribe returns a subscriber for group reading the given topics
func (b *MemoryBus) Subscribe(group string, topics []string) *MemorySubscriber {
	set := make(map[string]bool, len(topics))
	for _, t := range topics {
		set[t] = true
	}
	return &MemorySubscriber{bus: b, group: group, topics: set}
}

func (b *MemoryBus) take(group string, topics map[string]bool, max int) ([]*Record, <-chan struct{}, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []*Record
	i := b.delivered[group]
	for ; i < len(b.log) && len(out) < max; i++ {
		e := b.log[i]
		if !topics[e.topic] {
			continue
		}
		out = append(out, NewRecord(e.topic, e.key, e.value, int64(i), e.ts, func() error {
			b.mu.Lock()
			b.committed[group]++
			b.mu.Unlock()
			return nil
		}))
	}
	b.delivered[group] = i
	return out, b.notify, b.closed
}

// MemorySubscriber polls a MemoryBus for one consumer group
type MemorySubscriber struct {
	bus    *MemoryBus
	group  string
	topics map[string]bool

	mu     sync.Mutex
	closed bool
}

// Poll returns pending records, waiting up to wait for the first one
func (s *MemorySubscriber) Poll(ctx context.Context, max int, wait time.Duration) ([]*Record, error) {
	if max <= 0 {
		max = 1
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return nil, ErrClosed
		}

		records, notify, busClosed := s.bus.take(s.group, s.topics, max)
		if len(records) > 0 {
			return records, nil
		}
		if busClosed {
			return nil, ErrClosed
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, nil
		case <-notify:
		}
	}
}

// Close stops the subscriber; the bus itself stays open
func (s *MemorySubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var (
	_ Publisher  = (*MemoryBus)(nil)
	_ Subscriber = (*MemorySubscriber)(nil)
)
