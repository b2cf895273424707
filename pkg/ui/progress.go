package ui

import (
	"fmt"
	"time"
)

// SummaryInterval is how many successful downloads pass between
// throughput summary lines.
const SummaryInterval = 20

// DownloadTracker prints per-item progress for the sequential download loop
type DownloadTracker struct {
	Total      int
	Downloaded int
	Failed     int
	StartTime  time.Time

	now func() time.Time
}

// NewDownloadTracker creates a tracker for a batch of the given size
func NewDownloadTracker(total int) *DownloadTracker {
	return &DownloadTracker{
		Total:     total,
		StartTime: time.Now(),
		now:       time.Now,
	}
}

// Success records and prints a completed download. Every SummaryInterval
// successes it also prints a throughput summary line.
func (t *DownloadTracker) Success(index int, filename string, size int, elapsed time.Duration) {
	t.Downloaded++
	if !IsQuietMode() {
		fmt.Printf("  [%d/%d] %s %s (%.1fMB in %.1fs)\n",
			index+1, t.Total, filename, Green("✓"),
			float64(size)/1024/1024, elapsed.Seconds())
	}

	if t.Downloaded%SummaryInterval == 0 {
		t.PrintRate()
	}
}

// Failure records and prints a failed download
func (t *DownloadTracker) Failure(index int, filename string, reason string) {
	t.Failed++
	if !IsQuietMode() {
		fmt.Printf("  [%d/%d] %s %s %s\n",
			index+1, t.Total, filename, Red("✗"), reason)
	}
}

// Rate returns the average throughput in files per minute
func (t *DownloadTracker) Rate() float64 {
	elapsed := t.now().Sub(t.StartTime).Minutes()
	if elapsed == 0 {
		return 0
	}
	return float64(t.Downloaded) / elapsed
}

// PrintRate prints a throughput summary line
func (t *DownloadTracker) PrintRate() {
	if IsQuietMode() {
		return
	}
	fmt.Printf("    %s %d/%d downloaded (%.1f files/min)\n",
		Magenta("Progress:"), t.Downloaded, t.Total, t.Rate())
}

// PrintSummary prints the final batch summary
func (t *DownloadTracker) PrintSummary() {
	if IsQuietMode() {
		return
	}
	elapsed := t.now().Sub(t.StartTime)
	fmt.Printf("\n%s Downloaded %d files in %.1f minutes\n",
		Green("✓"), t.Downloaded, elapsed.Minutes())
	if t.Failed > 0 {
		fmt.Printf("%s Failed: %d files\n", Red("✗"), t.Failed)
	}
}
