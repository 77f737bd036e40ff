package controller

import "testing"

func TestSubscriptionBrokerDeliversToSubscriber(t *testing.T) {
	b := newSubscriptionBroker()

	ch, stop := b.Subscribe("topic")
	defer stop()

	b.Publish("topic", "event-1")

	select {
	case got := <-ch:
		if got != "event-1" {
			t.Fatalf("unexpected event: %v", got)
		}
	default:
		t.Fatalf("expected buffered event to be immediately readable")
	}
}

func TestSubscriptionBrokerDropsOldestOnOverflow(t *testing.T) {
	b := newSubscriptionBroker()

	ch, stop := b.Subscribe("topic")
	defer stop()

	for i := 0; i < subscriberQueueCapacity+10; i++ {
		b.Publish("topic", i)
	}

	if len(ch) != subscriberQueueCapacity {
		t.Fatalf("expected channel to be full at capacity %d, got %d", subscriberQueueCapacity, len(ch))
	}

	first := <-ch
	if first == 0 {
		t.Fatalf("expected the oldest events to have been dropped, got first=%v", first)
	}
}

func TestSubscriptionBrokerStopStopsDelivery(t *testing.T) {
	b := newSubscriptionBroker()

	ch, stop := b.Subscribe("topic")
	stop()

	b.Publish("topic", "after-stop")

	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel after stop, got value %v", v)
		}
	default:
		t.Fatalf("expected channel to be closed (readable without blocking) after stop")
	}
}

func TestSubscribeNewSqueaksReceivesPublishedEntry(t *testing.T) {
	c := newTestController(t)

	ch, stop := c.SubscribeNewSqueaks()
	defer stop()

	c.subs.Publish(topicNewSqueaks, "entry")

	select {
	case got := <-ch:
		if got != "entry" {
			t.Fatalf("unexpected event: %v", got)
		}
	default:
		t.Fatalf("expected buffered event to be immediately readable")
	}
}
