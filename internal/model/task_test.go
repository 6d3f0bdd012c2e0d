package model

import (
	"testing"
	"time"
)

func TestDimensionsString(t *testing.T) {
	tests := []struct {
		name     string
		task     ConversionTask
		expected string
	}{
		{
			"unchanged",
			ConversionTask{SourceWidth: 3000, SourceHeight: 2000, TargetWidth: 3000, TargetHeight: 2000},
			"3000x2000",
		},
		{
			"downscaled",
			ConversionTask{SourceWidth: 8000, SourceHeight: 4000, TargetWidth: 4096, TargetHeight: 2048},
			"8000x4000 -> 4096x2048",
		},
		{
			"never decoded",
			ConversionTask{},
			"—",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.DimensionsString(); got != tt.expected {
				t.Errorf("DimensionsString() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestWasDownscaled(t *testing.T) {
	tests := []struct {
		name     string
		task     ConversionTask
		expected bool
	}{
		{"identity", ConversionTask{SourceWidth: 100, SourceHeight: 50, TargetWidth: 100, TargetHeight: 50}, false},
		{"scaled down", ConversionTask{SourceWidth: 8000, SourceHeight: 4000, TargetWidth: 4096, TargetHeight: 2048}, true},
		{"no plan yet", ConversionTask{SourceWidth: 100, SourceHeight: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.WasDownscaled(); got != tt.expected {
				t.Errorf("WasDownscaled() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestElapsed(t *testing.T) {
	started := time.Now().Add(-2 * time.Second)
	finished := started.Add(time.Second)

	task := ConversionTask{StartedAt: started, FinishedAt: finished}
	if got := task.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v, expected %v", got, time.Second)
	}

	unstarted := ConversionTask{}
	if got := unstarted.Elapsed(); got != 0 {
		t.Errorf("Elapsed() for unstarted task = %v, expected 0", got)
	}
}
