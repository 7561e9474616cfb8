package codforge

import "testing"

func TestHashProjectionStability(t *testing.T) {
	p := Projection{Headline: "Hello", Benefits: []string{"a", "b"}}

	h1 := HashProjection(p)
	h2 := HashProjection(p)
	if h1 != h2 {
		t.Errorf("hash not stable: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("expected hex sha-256, got %q", h1)
	}

	p.Headline = "Goodbye"
	if HashProjection(p) == h1 {
		t.Error("hash must change with content")
	}
}

func TestCacheKeyIncludesTarget(t *testing.T) {
	p := Projection{Headline: "Hello"}
	h := HashProjection(p)

	a := CacheKey(h, "Francese")
	b := CacheKey(h, "Tedesco")
	if a == b {
		t.Error("keys for different targets must differ")
	}
	if a != h+":Francese" {
		t.Errorf("unexpected key format %q", a)
	}
}
