package codforge

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestSocialProofFeedRespectsCap(t *testing.T) {
	doc := ContentDocument{
		Language:          "Spagnolo",
		SocialProofConfig: &SocialProofConfig{Enabled: true, IntervalSeconds: 10, MaxShows: 3},
	}
	feed := NewSocialProofFeed(&doc, WithProofRand(rand.New(rand.NewSource(1))))

	locale := GetLocale("Spagnolo")
	var produced int
	for {
		ev, ok := feed.Next()
		if !ok {
			break
		}
		produced++
		if !strings.Contains(ev.Message, locale.FromWord) || !strings.HasSuffix(ev.Message, locale.Action) {
			t.Errorf("message %q missing locale phrasing", ev.Message)
		}
		if ev.Stock != -1 {
			t.Errorf("stock reported without scarcity: %d", ev.Stock)
		}
	}
	if produced != 3 {
		t.Errorf("produced %d events, want 3", produced)
	}
}

func TestSocialProofFeedDisabled(t *testing.T) {
	doc := ContentDocument{Language: "Italiano"}
	feed := NewSocialProofFeed(&doc)
	if _, ok := feed.Next(); ok {
		t.Error("feed without config must produce nothing")
	}

	doc.SocialProofConfig = &SocialProofConfig{Enabled: false, IntervalSeconds: 10, MaxShows: 4}
	feed = NewSocialProofFeed(&doc)
	if _, ok := feed.Next(); ok {
		t.Error("disabled feed must produce nothing")
	}
}

func TestSocialProofIntervalFloor(t *testing.T) {
	doc := ContentDocument{
		Language:          "Italiano",
		SocialProofConfig: &SocialProofConfig{Enabled: true, IntervalSeconds: 0, MaxShows: 1},
	}
	feed := NewSocialProofFeed(&doc)
	if feed.Interval() != 2*time.Second {
		t.Errorf("interval %v, want 2s floor", feed.Interval())
	}

	doc.SocialProofConfig.IntervalSeconds = 30
	feed = NewSocialProofFeed(&doc)
	if feed.Interval() != 30*time.Second {
		t.Errorf("interval %v, want 30s", feed.Interval())
	}
}

func TestSocialProofStockDecrementFloor(t *testing.T) {
	doc := ContentDocument{
		Language:          "Italiano",
		SocialProofConfig: &SocialProofConfig{Enabled: true, IntervalSeconds: 10, MaxShows: 10},
		StockConfig:       &StockConfig{Enabled: true, Quantity: 4},
	}
	feed := NewSocialProofFeed(&doc, WithProofRand(rand.New(rand.NewSource(1))))

	var last int
	for i := 0; i < 10; i++ {
		ev, ok := feed.Next()
		if !ok {
			t.Fatalf("feed ended early at %d", i)
		}
		if ev.Stock < minStockFloor {
			t.Errorf("stock %d dropped below floor", ev.Stock)
		}
		last = ev.Stock
	}
	if last != minStockFloor {
		t.Errorf("final stock %d, want %d", last, minStockFloor)
	}
}

func TestSocialProofRunClosesAtCap(t *testing.T) {
	doc := ContentDocument{
		Language:          "Inglese",
		SocialProofConfig: &SocialProofConfig{Enabled: true, IntervalSeconds: 0, MaxShows: 2},
	}
	feed := NewSocialProofFeed(&doc)
	feed.interval = 5 * time.Millisecond // keep the test fast

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got int
	for range feed.Run(ctx) {
		got++
	}
	if got != 2 {
		t.Errorf("received %d events, want 2", got)
	}
}

func TestScarcityText(t *testing.T) {
	doc := Complete(ContentDocument{Language: "Inglese"}, GetLocale("Inglese"))
	text := ScarcityText(&doc, 5)
	if !strings.Contains(text, "5") || strings.Contains(text, "{x}") {
		t.Errorf("scarcity text %q", text)
	}

	doc.StockConfig.TextOverride = "Hurry, {x} units remain"
	if got := ScarcityText(&doc, 3); got != "Hurry, 3 units remain" {
		t.Errorf("override text %q", got)
	}
}
