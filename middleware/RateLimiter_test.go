package middleware

import (
	"strconv"
	"testing"
)

func TestIPBanStorageBansAfterBurst(t *testing.T) {
	s := NewIPBanStorage()

	for i := 0; i <= requestsPerSecond; i++ {
		if err := s.Set("10.0.0.1", nil, 0); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	if !s.IsBanned("10.0.0.1") {
		t.Fatalf("expected IP banned after exceeding %d requests per second", requestsPerSecond)
	}
	if s.IsBanned("10.0.0.2") {
		t.Fatalf("unrelated IP must not be banned")
	}

	// banned IPs report a count far above the limit
	raw, err := s.Get("10.0.0.1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	count, err := strconv.Atoi(string(raw))
	if err != nil {
		t.Fatalf("count not numeric: %s", raw)
	}
	if count <= requestsPerSecond {
		t.Fatalf("expected banned count above the limit, got %d", count)
	}
}

func TestIPBanStorageCountsWithinBudget(t *testing.T) {
	s := NewIPBanStorage()

	for i := 0; i < requestsPerSecond; i++ {
		if err := s.Set("10.0.0.3", nil, 0); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	if s.IsBanned("10.0.0.3") {
		t.Fatalf("IP within budget must not be banned")
	}

	raw, _ := s.Get("10.0.0.3")
	if string(raw) != strconv.Itoa(requestsPerSecond) {
		t.Fatalf("expected count %d, got %s", requestsPerSecond, raw)
	}

	if err := s.Delete("10.0.0.3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	raw, _ = s.Get("10.0.0.3")
	if string(raw) != "0" {
		t.Fatalf("expected count reset to 0, got %s", raw)
	}
}
