package codforge

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	// minProofInterval is the lowest cadence a page may configure.
	minProofInterval = 2 * time.Second

	// minStockFloor is the lowest value the scarcity counter may
	// decrement to; the page never claims to be sold out.
	minStockFloor = 2
)

// SocialProofEvent is one synthetic "X from Y just bought" notification.
// Stock carries the remaining scarcity count after the event, or -1 when
// the scarcity counter is disabled.
type SocialProofEvent struct {
	Message string `json:"message"`
	Stock   int    `json:"stock"`
}

// SocialProofFeed produces the periodic purchase notifications for one
// page. Next yields events synchronously until the configured cap is
// reached; Run paces them on a channel in the background.
type SocialProofFeed struct {
	locale   LocaleConfig
	cfg      SocialProofConfig
	interval time.Duration
	rng      *rand.Rand

	shown     int
	remaining int // -1 when scarcity is off
}

// SocialProofOption is a functional option for configuring the feed.
type SocialProofOption func(*SocialProofFeed)

// WithProofRand overrides the randomness source used for name and city
// selection.
func WithProofRand(rng *rand.Rand) SocialProofOption {
	return func(f *SocialProofFeed) {
		f.rng = rng
	}
}

// NewSocialProofFeed builds a feed for doc. A nil or disabled
// SocialProofConfig yields a feed that produces no events.
func NewSocialProofFeed(doc *ContentDocument, opts ...SocialProofOption) *SocialProofFeed {
	f := &SocialProofFeed{
		locale:    GetLocale(doc.Language),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		remaining: -1,
	}
	if doc.SocialProofConfig != nil {
		f.cfg = *doc.SocialProofConfig
	}

	f.interval = time.Duration(f.cfg.IntervalSeconds) * time.Second
	if f.interval < minProofInterval {
		f.interval = minProofInterval
	}
	if doc.StockConfig != nil && doc.StockConfig.Enabled {
		f.remaining = doc.StockConfig.Quantity
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Interval returns the effective cadence between events.
func (f *SocialProofFeed) Interval() time.Duration {
	return f.interval
}

// Next produces the next notification. It returns false once the feed
// is disabled or the configured show cap has been reached.
func (f *SocialProofFeed) Next() (SocialProofEvent, bool) {
	if !f.cfg.Enabled || len(f.locale.Names) == 0 || len(f.locale.Cities) == 0 {
		return SocialProofEvent{}, false
	}
	if f.cfg.MaxShows > 0 && f.shown >= f.cfg.MaxShows {
		return SocialProofEvent{}, false
	}
	f.shown++

	name := f.locale.Names[f.rng.Intn(len(f.locale.Names))]
	city := f.locale.Cities[f.rng.Intn(len(f.locale.Cities))]

	ev := SocialProofEvent{
		Message: fmt.Sprintf("%s %s %s %s", name, f.locale.FromWord, city, f.locale.Action),
		Stock:   -1,
	}
	if f.remaining >= 0 {
		if f.remaining > minStockFloor {
			f.remaining--
		}
		ev.Stock = f.remaining
	}
	return ev, true
}

// Run delivers the remaining notifications on the returned channel, one
// per interval, and closes it when the cap is reached or ctx ends.
func (f *SocialProofFeed) Run(ctx context.Context) <-chan SocialProofEvent {
	events := make(chan SocialProofEvent)
	go func() {
		defer close(events)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ev, ok := f.Next()
				if !ok {
					return
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events
}

// ScarcityText renders the page's scarcity line with the remaining
// quantity substituted for {x}. An override on the stock configuration
// wins over the locale template.
func ScarcityText(doc *ContentDocument, remaining int) string {
	template := ""
	if doc.StockConfig != nil && doc.StockConfig.TextOverride != "" {
		template = doc.StockConfig.TextOverride
	} else if doc.Labels != nil {
		template = doc.Labels.OnlyLeft
	} else {
		template = GetLocale(doc.Language).Labels.OnlyLeft
	}
	return strings.ReplaceAll(template, "{x}", fmt.Sprintf("%d", remaining))
}
