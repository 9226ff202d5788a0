package utils

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{8 * time.Second, "8s"},
		{65 * time.Second, "1m 05s"},
		{90 * time.Minute, "1h 30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name           string
		current, total int64
		width          int
		wantFilled     int
	}{
		{"empty", 0, 10, 10, 0},
		{"half", 5, 10, 10, 5},
		{"full", 10, 10, 10, 10},
		{"overfull clamps", 15, 10, 10, 10},
		{"negative clamps", -3, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.current, tt.total, tt.width)
			filled := 0
			for _, r := range bar {
				if r == '█' {
					filled++
				}
			}
			if filled != tt.wantFilled {
				t.Errorf("ProgressBar(%d, %d, %d) filled = %d, want %d",
					tt.current, tt.total, tt.width, filled, tt.wantFilled)
			}
		})
	}

	if ProgressBar(1, 0, 10) != "" {
		t.Error("zero total should render nothing")
	}
}
