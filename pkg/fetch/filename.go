package fetch

import (
	"fmt"
	"strings"

	"snapvault/pkg/models"
)

// URL hints checked in order when the media type text decides nothing.
// The export URLs often carry the extension mid-path rather than as a
// suffix, so these are substring matches.
var urlExtensionHints = []struct {
	hint string
	ext  string
}{
	{".mp4", "mp4"},
	{".mov", "mov"},
	{".jpg", "jpg"},
	{".jpeg", "jpg"},
	{".png", "png"},
}

// Filename derives the deterministic local file name for a record:
// YYYYMMDD_HHMMSS_NNNN.<ext>, where NNNN is the record's position in the
// normalized list.
func Filename(rec models.MediaRecord, index int) string {
	return fmt.Sprintf("%s_%04d.%s",
		rec.CapturedAt.Format("20060102_150405"),
		index,
		Extension(rec.MediaType, rec.SourceURL))
}

// Extension picks a file extension from the media type text, falling back
// to URL hints, then to jpg.
func Extension(mediaType, url string) string {
	mt := strings.ToLower(mediaType)
	if strings.Contains(mt, "video") {
		return "mp4"
	}
	if strings.Contains(mt, "image") || strings.Contains(mt, "photo") {
		return "jpg"
	}

	lower := strings.ToLower(url)
	for _, h := range urlExtensionHints {
		if strings.Contains(lower, h.hint) {
			return h.ext
		}
	}

	return "jpg"
}
