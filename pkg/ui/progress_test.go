package ui

import (
	"testing"
	"time"
)

func TestTrackerCounts(t *testing.T) {
	SetQuietMode(true)
	defer SetQuietMode(false)

	tracker := NewDownloadTracker(5)
	tracker.Success(0, "a.jpg", 1024, time.Millisecond)
	tracker.Success(1, "b.mp4", 2048, time.Millisecond)
	tracker.Failure(2, "c.jpg", "HTTP 500")

	if tracker.Downloaded != 2 {
		t.Errorf("expected 2 downloaded, got %d", tracker.Downloaded)
	}
	if tracker.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", tracker.Failed)
	}
}

func TestTrackerRate(t *testing.T) {
	SetQuietMode(true)
	defer SetQuietMode(false)

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := &DownloadTracker{
		Total:     10,
		StartTime: start,
		now:       func() time.Time { return start.Add(2 * time.Minute) },
	}
	tracker.Downloaded = 6

	rate := tracker.Rate()
	if rate != 3 {
		t.Errorf("expected 3 files/min, got %.2f", rate)
	}
}

func TestTrackerRateZeroElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := &DownloadTracker{
		Total:     10,
		StartTime: start,
		now:       func() time.Time { return start },
	}
	tracker.Downloaded = 3

	if rate := tracker.Rate(); rate != 0 {
		t.Errorf("expected 0 rate with no elapsed time, got %.2f", rate)
	}
}

func TestQuietMode(t *testing.T) {
	SetQuietMode(true)
	if !IsQuietMode() {
		t.Error("expected quiet mode on")
	}
	SetQuietMode(false)
	if IsQuietMode() {
		t.Error("expected quiet mode off")
	}
}
