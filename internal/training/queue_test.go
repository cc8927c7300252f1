package training

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
)

func TestEnqueueAssignsStrictlyIncreasingVersions(t *testing.T) {
	q := NewQueue(0)

	for want := int64(1); want <= 5; want++ {
		task := q.Enqueue()
		if task.Version != want {
			t.Fatalf("expected version %d, got %d", want, task.Version)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("expected 5 queued tasks, got %d", q.Len())
	}
}

func TestQueueContinuesFromLastPublishedVersion(t *testing.T) {
	q := NewQueue(7)

	task := q.Enqueue()
	if task.Version != 8 {
		t.Fatalf("expected version 8, got %d", task.Version)
	}
}

func TestDequeueReturnsTasksInEnqueueOrder(t *testing.T) {
	q := NewQueue(0)
	first := q.Enqueue()
	second := q.Enqueue()
	third := q.Enqueue()

	ctx := context.Background()
	for i, want := range []Task{first, second, third} {
		got, err := q.Dequeue(ctx)
		if err != nil {
			t.Fatalf("dequeue %d failed: %v", i, err)
		}
		if got != want {
			t.Fatalf("dequeue %d: expected %+v, got %+v", i, want, got)
		}
		q.Complete()
	}
	q.Wait()
}

func TestConcurrentProducersGetDistinctConsecutiveVersions(t *testing.T) {
	const producers = 32
	q := NewQueue(0)

	var wg sync.WaitGroup
	versions := make(chan int64, producers)
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			versions <- q.Enqueue().Version
		}()
	}
	wg.Wait()
	close(versions)

	var got []int64
	for v := range versions {
		got = append(got, v)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	if len(got) != producers {
		t.Fatalf("expected %d versions, got %d", producers, len(got))
	}
	for i, v := range got {
		if v != int64(i+1) {
			t.Fatalf("expected consecutive versions 1..%d, got %v", producers, got)
		}
	}
}

func TestDequeueBlocksUntilEnqueue(t *testing.T) {
	q := NewQueue(0)

	result := make(chan Task, 1)
	go func() {
		task, err := q.Dequeue(context.Background())
		if err != nil {
			return
		}
		result <- task
	}()

	select {
	case task := <-result:
		t.Fatalf("dequeue returned %+v before anything was enqueued", task)
	case <-time.After(20 * time.Millisecond):
	}

	want := q.Enqueue()
	select {
	case got := <-result:
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	case <-time.After(time.Second):
		t.Fatal("dequeue did not observe the enqueued task")
	}
}

func TestDequeueStopsOnContextCancel(t *testing.T) {
	q := NewQueue(0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("dequeue did not return after cancel")
	}
}
