package cache

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryCache_GetSet(t *testing.T) {
	c := NewInMemoryCache(3600) // 1 hour TTL

	err := c.Set("key1", "value1")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "value1" {
		t.Errorf("Get returned %q, want %q", val, "value1")
	}

	val, ok = c.Get("nonexistent")
	if ok {
		t.Error("Get should return false for missing key")
	}
	if val != "" {
		t.Errorf("Get should return empty string for missing key, got %q", val)
	}
}

func TestInMemoryCache_TTL(t *testing.T) {
	c := NewInMemoryCache(1) // 1 second TTL

	c.Set("key1", "value1")

	val, ok := c.Get("key1")
	if !ok || val != "value1" {
		t.Error("Value should be available immediately after set")
	}

	time.Sleep(1100 * time.Millisecond)

	val, ok = c.Get("key1")
	if ok {
		t.Error("Value should be expired after TTL")
	}
	if val != "" {
		t.Errorf("Expired value should return empty string, got %q", val)
	}
}

func TestInMemoryCache_NoTTL(t *testing.T) {
	c := NewInMemoryCache(0)

	c.Set("key1", "value1")
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("key1"); !ok {
		t.Error("Value should never expire with TTL 0")
	}
}

func TestInMemoryCache_Clear(t *testing.T) {
	c := NewInMemoryCache(0)
	c.Set("a", "1")
	c.Set("b", "2")

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestInMemoryCache_Concurrent(t *testing.T) {
	c := NewInMemoryCache(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set("shared", "value")
			c.Get("shared")
		}()
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Error("Expected shared key to survive concurrent access")
	}
}
