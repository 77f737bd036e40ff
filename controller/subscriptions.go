package controller

import "sync"

// subscriberQueueCapacity bounds each subscriber's buffered channel, per
// §5 ("bounded queues, default capacity 1000, drop-oldest semantics").
const subscriberQueueCapacity = 1000

// subscription is a single cancellable subscriber stream, per §4.8.
type subscription struct {
	ch   chan interface{}
	stop chan struct{}
	once sync.Once
}

// Stop signals the producer side to stop publishing to this subscriber
// and closes its channel.
func (s *subscription) Stop() {
	s.once.Do(func() {
		close(s.stop)
		close(s.ch)
	})
}

// subscriptionBroker fans published events out to every live subscriber
// of a topic, with drop-oldest overflow semantics so a slow subscriber
// never blocks a publisher.
type subscriptionBroker struct {
	mu     sync.Mutex
	topics map[string]map[*subscription]struct{}
}

func newSubscriptionBroker() *subscriptionBroker {
	return &subscriptionBroker{
		topics: make(map[string]map[*subscription]struct{}),
	}
}

// Subscribe registers a new subscriber on topic and returns its event
// channel and a stop function. The caller must call stop to release the
// subscription.
func (b *subscriptionBroker) Subscribe(topic string) (<-chan interface{}, func()) {
	sub := &subscription{
		ch:   make(chan interface{}, subscriberQueueCapacity),
		stop: make(chan struct{}),
	}

	b.mu.Lock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscription]struct{})
	}
	b.topics[topic][sub] = struct{}{}
	b.mu.Unlock()

	stopFn := func() {
		b.mu.Lock()
		delete(b.topics[topic], sub)
		b.mu.Unlock()
		sub.Stop()
	}

	return sub.ch, stopFn
}

// Publish fans event out to every subscriber of topic. A subscriber whose
// buffer is full has its oldest event dropped to make room, rather than
// blocking the publisher.
func (b *subscriptionBroker) Publish(topic string, event interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for s := range b.topics[topic] {
		select {
		case s.ch <- event:
		default:
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- event:
			default:
			}
		}
	}
}

func (b *subscriptionBroker) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, subs := range b.topics {
		for s := range subs {
			s.Stop()
		}
	}
	b.topics = make(map[string]map[*subscription]struct{})
}

// Topic names for the controller's published event streams, per §4.8 and
// §6 ("subscribe_* for each of ...").
const (
	topicNewSqueaks       = "new_squeaks"
	topicConnectedPeers   = "connected_peers"
	topicReceivedPayments = "received_payments"
)

func squeakTopic(hash [32]byte) string {
	return "squeak_entry:" + string(hash[:])
}

// SubscribeNewSqueaks streams every squeak accepted by this node going
// forward, per §6 (subscribe_new_squeaks).
func (c *Controller) SubscribeNewSqueaks() (<-chan interface{}, func()) {
	return c.subs.Subscribe(topicNewSqueaks)
}

// SubscribeConnectedPeers subscribes to the connected-peers topic, per §6
// (subscribe_connected_peers). The controller publishes no events on this
// topic, so the returned channel receives nothing until it is stopped.
func (c *Controller) SubscribeConnectedPeers() (<-chan interface{}, func()) {
	return c.subs.Subscribe(topicConnectedPeers)
}

// SubscribeReceivedPayments streams every received_payment row written
// going forward, per §6 (subscribe_received_payments).
func (c *Controller) SubscribeReceivedPayments() (<-chan interface{}, func()) {
	return c.subs.Subscribe(topicReceivedPayments)
}

// SubscribeSqueakEntry streams updates (e.g. unlock, like) to a single
// squeak, per §6 (subscribe_squeak_entry(hash)).
func (c *Controller) SubscribeSqueakEntry(hash [32]byte) (<-chan interface{}, func()) {
	return c.subs.Subscribe(squeakTopic(hash))
}
