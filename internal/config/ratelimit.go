package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

type RateLimit struct {
	Limit rate.Limit
	Burst int
}

// NewRateLimit reads RATE_LIMIT_RPS and RATE_LIMIT_BURST, defaulting to
// 20 requests per second with bursts of 40.
func NewRateLimit() (*RateLimit, error) {
	cfg := &RateLimit{Limit: 20, Burst: 40}

	if rpsStr, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok {
		rps, err := strconv.ParseFloat(rpsStr, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", rpsStr)
		}
		cfg.Limit = rate.Limit(rps)
	}

	if burstStr, ok := os.LookupEnv("RATE_LIMIT_BURST"); ok {
		burst, err := strconv.Atoi(burstStr)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", burstStr)
		}
		cfg.Burst = burst
	}

	return cfg, nil
}
