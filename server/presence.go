package server

import (
	"sort"
	"sync"
	"time"
)

// Visitor is one live session on a public page, as reported to the
// operator's live-visitors view.
type Visitor struct {
	ID       string    `json:"id"`
	IP       string    `json:"ip,omitempty"`
	City     string    `json:"city,omitempty"`
	Country  string    `json:"country,omitempty"`
	Lat      float64   `json:"lat,omitempty"`
	Lon      float64   `json:"lon,omitempty"`
	OnlineAt time.Time `json:"online_at"`
	PageURL  string    `json:"pageUrl,omitempty"`
	Action   string    `json:"action,omitempty"`
}

// Hub tracks visitors currently connected to public pages. Sessions
// join when their event stream opens and leave when it closes; a
// completed purchase is broadcast onto the matching visitor entries.
type Hub struct {
	mu       sync.RWMutex
	visitors map[string]Visitor
}

// NewHub creates an empty presence hub.
func NewHub() *Hub {
	return &Hub{visitors: make(map[string]Visitor)}
}

// Join registers a visitor. A rejoin with the same ID replaces the
// previous entry.
func (h *Hub) Join(v Visitor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visitors[v.ID] = v
}

// Leave removes a visitor. Unknown IDs are ignored.
func (h *Hub) Leave(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.visitors, id)
}

// MarkPurchase flags every visitor session from the given address as
// having purchased on pageURL. Orders arrive on a plain form POST with
// no session identifier, so the client address is the join key.
func (h *Hub) MarkPurchase(ip, pageURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, v := range h.visitors {
		if v.IP == ip {
			v.Action = "purchased"
			v.PageURL = pageURL
			h.visitors[id] = v
		}
	}
}

// Snapshot returns the current visitors ordered by join time.
func (h *Hub) Snapshot() []Visitor {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Visitor, 0, len(h.visitors))
	for _, v := range h.visitors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OnlineAt.Equal(out[j].OnlineAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].OnlineAt.Before(out[j].OnlineAt)
	})
	return out
}

// Count reports how many visitors are online.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.visitors)
}
