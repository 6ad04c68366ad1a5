package utils

import (
	"sync"
	"testing"
)

func TestNewSnowflake_节点范围(t *testing.T) {
	if _, err := NewSnowflake(-1); err == nil {
		t.Fatalf("negative node id should fail")
	}
	if _, err := NewSnowflake(maxNodeID + 1); err == nil {
		t.Fatalf("node id overflow should fail")
	}
}

func TestSnowflake_单调递增且带节点号(t *testing.T) {
	s, err := NewSnowflake(5)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	prev := int64(0)
	for i := 0; i < 10000; i++ {
		id := s.NextID()
		if id <= prev {
			t.Fatalf("id not increasing: prev=%d id=%d", prev, id)
		}
		if node := (id >> nodeShift) & maxNodeID; node != 5 {
			t.Fatalf("node: got=%d", node)
		}
		prev = id
	}
}

func TestSnowflake_时钟回拨不回退(t *testing.T) {
	s, _ := NewSnowflake(1)
	ts := snowflakeEpochMilli + 1000
	s.now = func() int64 { return ts }
	a := s.NextID()
	ts -= 500
	b := s.NextID()
	if b <= a {
		t.Fatalf("clock rollback produced smaller id: a=%d b=%d", a, b)
	}
}

func TestSnowflake_并发唯一(t *testing.T) {
	s, _ := NewSnowflake(1)
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{})
		wg   sync.WaitGroup
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				id := s.NextID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 8000 {
		t.Fatalf("expected 8000 unique ids, got %d", len(seen))
	}
}
