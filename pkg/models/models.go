package models

import (
	"strings"
	"time"
)

// MediaRecord is a normalized entry from the export's "Saved Media" list.
// CapturedAt and SourceURL are always set; records missing either are
// dropped by the loader.
type MediaRecord struct {
	CapturedAt time.Time
	RawDate    string
	MediaType  string
	Location   string
	SourceURL  string
}

// IsVideo reports whether the media type text marks this record as a video.
func (r MediaRecord) IsVideo() bool {
	return strings.Contains(strings.ToLower(r.MediaType), "video")
}

// DownloadedRecord is a MediaRecord whose payload was fetched successfully.
// LocalPath is relative to the output directory, e.g.
// "media/20230501_100000_0000.jpg".
type DownloadedRecord struct {
	MediaRecord
	LocalPath string
}
