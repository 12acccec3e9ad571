package main

import (
	"fmt"
	"log"
	"time"
)

// logLimiter suppresses a log message seen again within interval and
// reports how many copies were dropped once something gets through.
type logLimiter struct {
	interval      time.Duration
	nowFunc       func() time.Time
	previousEntry string
	previousTime  time.Time
	suppressed    int
}

func newLogLimiter(interval time.Duration) *logLimiter {
	return &logLimiter{
		interval: interval,
		nowFunc:  time.Now,
	}
}

func (limiter *logLimiter) Printf(format string, v ...interface{}) {
	limiter.Print(fmt.Sprintf(format, v...))
}

func (limiter *logLimiter) Print(s string) {
	now := limiter.nowFunc()
	if s == limiter.previousEntry && now.Sub(limiter.previousTime) < limiter.interval {
		limiter.suppressed++
		return
	}

	if limiter.suppressed > 0 {
		log.Printf("last message repeated %d times", limiter.suppressed)
		limiter.suppressed = 0
	}
	log.Print(s)
	limiter.previousTime = now
	limiter.previousEntry = s
}
