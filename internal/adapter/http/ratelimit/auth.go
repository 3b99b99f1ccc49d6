// Package ratelimit locks out clients that keep presenting bad API tokens.
package ratelimit

import (
	"sync"
	"time"
)

type failureRecord struct {
	Count        int
	LastFailure  time.Time
	BlockedUntil time.Time
}

// AuthLimiter counts failed authentications per client. A client that fails
// more than maxFailures times inside window is blocked for blockDuration.
type AuthLimiter struct {
	mu             sync.Mutex
	records        map[string]*failureRecord
	maxFailures    int
	windowDuration time.Duration
	blockDuration  time.Duration
	now            func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewAuthLimiter(maxFailures int, windowDuration, blockDuration time.Duration) *AuthLimiter {
	limiter := &AuthLimiter{
		records:        make(map[string]*failureRecord),
		maxFailures:    maxFailures,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		now:            time.Now,
		stop:           make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

// Allow reports whether clientID may attempt authentication, and if not,
// how long it remains blocked.
func (l *AuthLimiter) Allow(clientID string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[clientID]
	if !ok {
		return true, 0
	}
	now := l.now()
	if now.Before(record.BlockedUntil) {
		return false, record.BlockedUntil.Sub(now)
	}
	return true, 0
}

// Fail records a failed attempt and returns the block duration if this
// failure tipped the client over the limit.
func (l *AuthLimiter) Fail(clientID string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, ok := l.records[clientID]
	if !ok {
		record = &failureRecord{}
		l.records[clientID] = record
	}

	if now.Sub(record.LastFailure) > l.windowDuration {
		record.Count = 0
	}
	record.Count++
	record.LastFailure = now

	if record.Count > l.maxFailures {
		record.BlockedUntil = now.Add(l.blockDuration)
		record.Count = 0
		return l.blockDuration
	}
	return 0
}

func (l *AuthLimiter) Reset(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.records, clientID)
}

// Close stops the background sweeper.
func (l *AuthLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *AuthLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *AuthLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for clientID, record := range l.records {
		if now.Sub(record.LastFailure) > l.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(l.records, clientID)
		}
	}
}
