package app

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestFeed_PublishReachesInterestedSubscribers(t *testing.T) {
	feed := NewFeed(4)

	all, unsubAll := feed.Subscribe()
	defer unsubAll()
	clients, unsubClients := feed.Subscribe(CollectionClients)
	defer unsubClients()

	feed.Publish(CollectionTickets, OpCreate, "t1")
	feed.Publish(CollectionClients, OpUpdate, "c1")

	if got := len(all); got != 2 {
		t.Errorf("all-collections subscriber got %d events, want 2", got)
	}
	if got := len(clients); got != 1 {
		t.Fatalf("clients subscriber got %d events, want 1", got)
	}
	ev := <-clients
	if ev.Collection != CollectionClients || ev.Op != OpUpdate || ev.ID != "c1" || ev.At.IsZero() {
		t.Errorf("event = %+v", ev)
	}
}

func TestFeed_SlowSubscriberDropsEvents(t *testing.T) {
	feed := NewFeed(1)
	events, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	feed.Publish(CollectionIncome, OpCreate, "i1")
	feed.Publish(CollectionIncome, OpCreate, "i2")

	if got := len(events); got != 1 {
		t.Fatalf("buffered events = %d, want 1", got)
	}
	if ev := <-events; ev.ID != "i1" {
		t.Errorf("kept event %q, want the first one", ev.ID)
	}
}

func TestFeed_UnsubscribeClosesChannel(t *testing.T) {
	feed := NewFeed(0)
	events, unsubscribe := feed.Subscribe()

	unsubscribe()
	unsubscribe()

	if _, ok := <-events; ok {
		t.Error("channel still open after unsubscribe")
	}
	if feed.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", feed.Subscribers())
	}

	// Publishing after everyone left must not panic.
	feed.Publish(CollectionClients, OpCreate, "c1")
}

func TestFeed_NilPublishIsNoop(t *testing.T) {
	var feed *Feed
	feed.Publish(CollectionClients, OpCreate, "c1")
}

func TestFeed_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	feed := NewFeed(8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		events, unsubscribe := feed.Subscribe()
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range events {
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				feed.Publish(CollectionTaskLogs, OpCreate, "l")
			}
			unsubscribe()
		}()
	}
	wg.Wait()

	if feed.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", feed.Subscribers())
	}
}
