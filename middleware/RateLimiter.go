package middleware

import (
	"strconv"
	"sync"
	"time"

	"user-registry/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	// requestsPerSecond is the per-IP budget before a ban kicks in.
	requestsPerSecond = 10
	banDuration       = 10 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

// IPBanStorage backs the rate limiter with per-IP request counts and
// temporary bans (Fiber Storage interface).
type IPBanStorage struct {
	mu       sync.RWMutex
	requests map[string][]time.Time
	bans     map[string]time.Time
}

func NewIPBanStorage() *IPBanStorage {
	storage := &IPBanStorage{
		requests: make(map[string][]time.Time),
		bans:     make(map[string]time.Time),
	}
	go storage.cleanup()
	return storage
}

// Get reports the request count for an IP over the last second. Banned IPs
// report a count far above any limit so the limiter keeps rejecting them.
func (s *IPBanStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if until, banned := s.bans[key]; banned && time.Now().Before(until) {
		return []byte("999999"), nil
	}

	return []byte(strconv.Itoa(s.countLocked(key, time.Now()))), nil
}

// Set records one request for an IP and bans it once the budget is exceeded.
func (s *IPBanStorage) Set(key string, _ []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, banned := s.bans[key]; banned && time.Now().Before(until) {
		return nil
	}

	now := time.Now()
	s.requests[key] = append(s.requests[key], now)

	if s.countLocked(key, now) > requestsPerSecond {
		s.bans[key] = now.Add(banDuration)
		util.Logger.Warn().Str("ip", key).Dur("ban", banDuration).Msg("ip banned for exceeding rate limit")
	}

	return nil
}

// countLocked counts requests within the last second; callers hold the lock.
func (s *IPBanStorage) countLocked(key string, now time.Time) int {
	count := 0
	for _, ts := range s.requests[key] {
		if now.Sub(ts) <= time.Second {
			count++
		}
	}
	return count
}

func (s *IPBanStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, key)
	delete(s.bans, key)
	return nil
}

func (s *IPBanStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[string][]time.Time)
	s.bans = make(map[string]time.Time)
	return nil
}

func (s *IPBanStorage) Close() error {
	return nil
}

// cleanup drops stale request timestamps and expired bans periodically.
func (s *IPBanStorage) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()

		for ip, timestamps := range s.requests {
			fresh := timestamps[:0]
			for _, ts := range timestamps {
				if now.Sub(ts) <= time.Second {
					fresh = append(fresh, ts)
				}
			}
			if len(fresh) == 0 {
				delete(s.requests, ip)
			} else {
				s.requests[ip] = fresh
			}
		}

		for ip, until := range s.bans {
			if now.After(until) {
				delete(s.bans, ip)
			}
		}

		s.mu.Unlock()
	}
}

// IsBanned checks if an IP is currently banned
func (s *IPBanStorage) IsBanned(ip string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, banned := s.bans[ip]
	return banned && time.Now().Before(until)
}

var banStorage *IPBanStorage

// InitRateLimiter builds the global rate limiter: requestsPerSecond per IP,
// offenders banned for banDuration.
func InitRateLimiter() fiber.Handler {
	if banStorage == nil {
		banStorage = NewIPBanStorage()
	}

	return limiter.New(limiter.Config{
		Max:        requestsPerSecond,
		Expiration: time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			if banStorage.IsBanned(c.IP()) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error":   "ip banned",
					"message": "your IP has been temporarily banned for exceeding rate limits",
				})
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests per second, please slow down",
			})
		},
		Storage: banStorage,
	})
}
