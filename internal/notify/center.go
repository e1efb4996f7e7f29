// Package notify holds transient per-viewer status notices. A notice
// replaces the viewer's previous one and auto-hides after a fixed
// delay.
package notify

import (
	"sync"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/metrics"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 5 * time.Second

// Severity classifies a notice for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notice is one transient status message.
type Notice struct {
	Text     string
	Severity Severity
}

// Center stores the current notice per viewer key.
type Center struct {
	mu      sync.Mutex
	notices map[string]Notice
	ttl     time.Duration
}

// NewCenter creates a Center with the given notice lifetime. A zero ttl
// falls back to DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		notices: make(map[string]Notice),
		ttl:     ttl,
	}
}

// Show replaces the viewer's current notice and schedules its auto-hide.
// Earlier hide timers are not cancelled: each one clears whatever notice
// occupies the slot when it fires, so a notice shown shortly after
// another can be hidden early by the older timer.
func (c *Center) Show(key, text string, severity Severity) {
	c.mu.Lock()
	c.notices[key] = Notice{Text: text, Severity: severity}
	c.mu.Unlock()

	metrics.NoticesTotal.WithLabelValues(string(severity)).Inc()

	time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		delete(c.notices, key)
		c.mu.Unlock()
	})
}

// Current returns the viewer's live notice, if any.
func (c *Center) Current(key string) (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	notice, ok := c.notices[key]
	return notice, ok
}
