package snowflake

import (
	"errors"
	"sync"
	"testing"
)

func TestNextID_UniqueAndIncreasing(t *testing.T) {
	s := NewSnowflake(1)
	var last int64
	for i := 0; i < 10000; i++ {
		id, err := s.NextID()
		if err != nil {
			t.Fatalf("NextID: %v", err)
		}
		if id <= last {
			t.Fatalf("id %d not greater than previous %d", id, last)
		}
		last = id
	}
}

func TestNextID_Concurrent(t *testing.T) {
	s := NewSnowflake(3)
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{})
		wg   sync.WaitGroup
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				id, err := s.NextID()
				if err != nil {
					t.Errorf("NextID: %v", err)
					return
				}
				mu.Lock()
				if _, dup := seen[id]; dup {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestNextID_ClockBackwards(t *testing.T) {
	now := int64(1767225600000 + 10000)
	s := NewSnowflake(1, WithClock(func() int64 { return now }))
	if _, err := s.NextID(); err != nil {
		t.Fatalf("NextID: %v", err)
	}
	now -= 1000
	if _, err := s.NextID(); !errors.Is(err, ErrClockBackwards) {
		t.Fatalf("want ErrClockBackwards, got %v", err)
	}
}

func TestNextID_Layout(t *testing.T) {
	now := int64(1767225600000 + 5)
	s := NewSnowflake(7, WithClock(func() int64 { return now }))
	id, _ := s.NextID()
	if got := id >> 22; got != 5 {
		t.Errorf("timestamp part = %d, want 5", got)
	}
	if got := (id >> 12) & 0x3ff; got != 7 {
		t.Errorf("worker part = %d, want 7", got)
	}
}

func TestNewSnowflake_InvalidWorker(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range worker id")
		}
	}()
	NewSnowflake(1024)
}
