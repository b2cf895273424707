package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"snapvault/pkg/logger"
	"snapvault/pkg/models"
)

// The export has shipped with two field-naming conventions over the years.
// Each field is resolved by trying the accepted spellings in priority order.
var (
	dateKeys      = []string{"Date", "date"}
	mediaTypeKeys = []string{"Media Type", "media_type"}
	locationKeys  = []string{"Location", "location"}
	directURLKeys = []string{"Media Download Url", "Media Download URL", "media_download_url"}
	wrapperKeys   = []string{"Download Link", "download_link"}
)

// Accepted date layouts, tried in order after the literal " UTC" suffix is
// stripped. The export's "%Y-%m-%d %H:%M:%S %Z" form collapses onto the
// first layout once the suffix is gone.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"January 2, 2006",
}

// Only the first few skipped items are logged, to keep diagnostics short
// on large exports.
const maxSkipDiagnostics = 5

// document mirrors the top level of the export JSON.
type document struct {
	SavedMedia []map[string]interface{} `json:"Saved Media"`
}

// Result holds the normalized records together with load statistics.
type Result struct {
	Records []models.MediaRecord
	Total   int // items present in "Saved Media"
	Skipped int // items dropped for missing fields or unparseable dates
}

// Load reads the export JSON at path and normalizes its "Saved Media" list.
// Records missing a date or URL under any accepted spelling, or whose date
// matches no accepted layout, are skipped without error. Input order is
// preserved.
func Load(path string, log logger.Logger) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}

	log.InfoWithFields("Export manifest loaded", map[string]interface{}{
		"path":  path,
		"items": len(doc.SavedMedia),
	})

	result := &Result{
		Records: make([]models.MediaRecord, 0, len(doc.SavedMedia)),
		Total:   len(doc.SavedMedia),
	}

	for idx, item := range doc.SavedMedia {
		rawDate := firstString(item, dateKeys...)
		mediaType := firstString(item, mediaTypeKeys...)
		location := firstString(item, locationKeys...)

		sourceURL := firstString(item, directURLKeys...)
		if sourceURL == "" {
			sourceURL = firstString(item, wrapperKeys...)
		}

		if rawDate == "" || sourceURL == "" {
			result.Skipped++
			if idx < maxSkipDiagnostics {
				log.WarnWithFields("Skipping item without date or URL", map[string]interface{}{
					"index": idx,
				})
			}
			continue
		}

		capturedAt, ok := ParseDate(rawDate)
		if !ok {
			result.Skipped++
			if idx < maxSkipDiagnostics {
				log.WarnWithFields("Skipping item with unparseable date", map[string]interface{}{
					"index": idx,
					"date":  rawDate,
				})
			}
			continue
		}

		result.Records = append(result.Records, models.MediaRecord{
			CapturedAt: capturedAt,
			RawDate:    rawDate,
			MediaType:  mediaType,
			Location:   location,
			SourceURL:  sourceURL,
		})
	}

	log.InfoWithFields("Export normalized", map[string]interface{}{
		"valid":   len(result.Records),
		"skipped": result.Skipped,
	})

	return result, nil
}

// ParseDate parses an export date string against the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, " UTC", ""))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// firstString returns the first non-empty string value found under the
// given keys.
func firstString(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
