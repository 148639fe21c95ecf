package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow_Millis(t *testing.T) {
	tests := []struct {
		in   Window
		want int64
	}{
		{WindowHour, 60 * 60 * 1000},
		{WindowDay, 24 * 60 * 60 * 1000},
		{WindowWeek, 7 * 24 * 60 * 60 * 1000},
		{WindowYear, 365 * 24 * 60 * 60 * 1000},
		{"12h", 12 * 60 * 60 * 1000},
		{"120d", 120 * 24 * 60 * 60 * 1000},
		{"0d", 0},
		{" 7d", 0},
		{"d", 0},
		{"7x", 0},
		{"7", 0},
		{"", 0},
		{"99999999999999999999d", math.MaxInt64},
		{"9999999999999y", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Millis())
		})
	}
}

func TestWindow_Duration(t *testing.T) {
	tests := []struct {
		in   Window
		want time.Duration
	}{
		{WindowHour, time.Hour},
		{WindowYear, 8760 * time.Hour},
		{"200y", 200 * 8760 * time.Hour},
		{"300y", time.Duration(math.MaxInt64)},
		{"99999999999999999999d", time.Duration(math.MaxInt64)},
		{"bogus", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Duration())
		})
	}
}

func TestWindow_Valid(t *testing.T) {
	for _, w := range Windows {
		assert.True(t, w.Valid(), "window %s", w)
	}
	assert.True(t, DefaultWindow.Valid())

	for _, w := range []Window{"", "12h", "7D", " 7d", "2y"} {
		assert.False(t, w.Valid(), "window %q", w)
	}
}
