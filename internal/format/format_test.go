package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "microseconds", d: 250 * time.Microsecond, expected: "250µs"},
		{name: "milliseconds", d: 42 * time.Millisecond, expected: "42ms"},
		{name: "seconds", d: 2500 * time.Millisecond, expected: "2.5s"},
		{name: "minutes", d: 90 * time.Second, expected: "1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Duration(tt.d))
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes", bytes: 2048, expected: "2.0 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bytes(tt.bytes))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "59.99 s", Seconds(59.994))
}
