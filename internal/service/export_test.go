package service

import "time"

// SetClock replaces the limiter's time source.
func (tb *TokenBucket) SetClock(now func() time.Time) {
	tb.mu.Lock()
	tb.now = now
	tb.mu.Unlock()
}

// Sweep runs one idle-bucket sweep immediately.
func (tb *TokenBucket) Sweep() { tb.sweep() }
