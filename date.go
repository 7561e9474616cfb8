package codforge

import (
	"math/rand"
	"sync"
	"time"
)

// Review dates are drawn uniformly from this window before now.
const (
	minReviewAgeDays = 7
	maxReviewAgeDays = 120
)

// lockedSource serializes access to an underlying rand source so one
// *rand.Rand can serve concurrent generation and translation calls.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// newConcurrentRand returns a rand safe for use from multiple
// goroutines.
func newConcurrentRand() *rand.Rand {
	src := rand.NewSource(time.Now().UnixNano()).(rand.Source64)
	return rand.New(&lockedSource{src: src})
}

// randomHistoricalDate returns a synthetic purchase date between 7 and
// 120 days before now, formatted in the locale's date layout.
func randomHistoricalDate(locale LocaleConfig, now time.Time, rng *rand.Rand) string {
	daysAgo := minReviewAgeDays + rng.Intn(maxReviewAgeDays-minReviewAgeDays+1)
	return now.AddDate(0, 0, -daysAgo).Format(locale.DateLayout)
}
