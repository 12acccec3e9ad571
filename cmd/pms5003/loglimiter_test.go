package main

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLogs() (*bytes.Buffer, func()) {
	flags := log.Flags()
	log.SetFlags(0)

	logs := new(bytes.Buffer)
	log.SetOutput(logs)

	return logs, func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	}
}

func Test_logLimiter_prints_distinct_messages(t *testing.T) {
	// Arrange
	logs, reset := captureLogs()
	defer reset()
	limiter := newLogLimiter(time.Minute)

	// Act
	limiter.Print("hello")
	limiter.Printf("pm2.5: %d", 12)

	// Assert
	assert.Equal(t, "hello\npm2.5: 12\n", logs.String())
}

func Test_logLimiter_suppresses_repeats_within_the_interval(t *testing.T) {
	// Arrange
	logs, reset := captureLogs()
	defer reset()
	now := time.Now()
	limiter := newLogLimiter(2 * time.Second)
	limiter.nowFunc = func() time.Time { return now }

	// Act
	limiter.Print("timed out")
	now = now.Add(time.Second)
	limiter.Print("timed out")
	limiter.Print("timed out")
	withinWindow := logs.String()
	now = now.Add(time.Second)
	limiter.Print("timed out")

	// Assert
	assert.Equal(t, "timed out\n", withinWindow)
	assert.Equal(t, "timed out\nlast message repeated 2 times\ntimed out\n", logs.String())
}

func Test_logLimiter_reports_suppressed_repeats_before_a_new_message(t *testing.T) {
	// Arrange
	logs, reset := captureLogs()
	defer reset()
	limiter := newLogLimiter(time.Minute)

	// Act
	limiter.Print("boom")
	limiter.Printf("boom")
	limiter.Print("recovered")
	limiter.Print("recovered")

	// Assert
	assert.Equal(t, "boom\nlast message repeated 1 times\nrecovered\n", logs.String())
}
