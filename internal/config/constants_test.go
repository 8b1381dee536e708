package config

import "testing"

func TestConstants(t *testing.T) {
	if WorkDuration <= 0 || ShortBreakDuration <= 0 || LongBreakDuration <= 0 {
		t.Fatalf("durations must be positive")
	}
	if ShortBreakDuration.Seconds() != 300 {
		t.Fatalf("ShortBreakDuration = %s, want 5m", ShortBreakDuration)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" || ConfigFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if MinGaugeWidth > TargetGaugeWidth {
		t.Fatalf("MinGaugeWidth exceeds TargetGaugeWidth")
	}
}
