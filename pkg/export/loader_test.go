package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapvault/pkg/logger"
)

func writeExport(t *testing.T, items []map[string]interface{}) string {
	t.Helper()

	doc := map[string]interface{}{"Saved Media": items}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "memories_history.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadFieldVariants(t *testing.T) {
	tests := []struct {
		name string
		item map[string]interface{}
	}{
		{
			name: "title case fields",
			item: map[string]interface{}{
				"Date":               "2023-05-01 10:00:00 UTC",
				"Media Type":         "Image",
				"Location":           "Latitude, Longitude: 0.0, 0.0",
				"Media Download Url": "https://example.com/a.jpg",
			},
		},
		{
			name: "snake case fields",
			item: map[string]interface{}{
				"date":               "2023-05-01 10:00:00",
				"media_type":         "Image",
				"location":           "somewhere",
				"media_download_url": "https://example.com/a.jpg",
			},
		},
		{
			name: "uppercase URL spelling",
			item: map[string]interface{}{
				"Date":               "2023-05-01 10:00:00 UTC",
				"Media Type":         "Image",
				"Media Download URL": "https://example.com/a.jpg",
			},
		},
		{
			name: "wrapper download link",
			item: map[string]interface{}{
				"Date":          "2023-05-01 10:00:00 UTC",
				"Media Type":    "Image",
				"Download Link": "https://example.com/a.jpg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeExport(t, []map[string]interface{}{tt.item})

			result, err := Load(path, logger.NewTestLogger())
			require.NoError(t, err)
			require.Len(t, result.Records, 1)

			rec := result.Records[0]
			assert.Equal(t, "https://example.com/a.jpg", rec.SourceURL)
			assert.Equal(t, 2023, rec.CapturedAt.Year())
			assert.Equal(t, time.May, rec.CapturedAt.Month())
		})
	}
}

func TestLoadDirectURLWinsOverWrapper(t *testing.T) {
	path := writeExport(t, []map[string]interface{}{{
		"Date":               "2023-05-01 10:00:00 UTC",
		"Media Download Url": "https://example.com/direct.jpg",
		"Download Link":      "https://example.com/wrapper",
	}})

	result, err := Load(path, logger.NewTestLogger())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "https://example.com/direct.jpg", result.Records[0].SourceURL)
}

func TestLoadSkipsIncompleteRecords(t *testing.T) {
	items := []map[string]interface{}{
		{"Date": "2023-05-01 10:00:00 UTC", "Media Download Url": "https://example.com/ok.jpg"},
		{"Media Download Url": "https://example.com/no-date.jpg"},
		{"Date": "2023-05-01 10:00:00 UTC"},
		{"Date": "not a date at all", "Media Download Url": "https://example.com/bad-date.jpg"},
		{},
	}
	path := writeExport(t, items)

	log := logger.NewTestLogger()
	result, err := Load(path, log)
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
	assert.Equal(t, len(items), result.Total)
	assert.Equal(t, result.Total-len(result.Records), result.Skipped)
	assert.NotEmpty(t, log.GetMessagesByLevel("WARN"))
}

func TestLoadPreservesOrder(t *testing.T) {
	items := []map[string]interface{}{
		{"Date": "2021-01-01 00:00:00 UTC", "Media Download Url": "https://example.com/1"},
		{"Date": "2023-01-01 00:00:00 UTC", "Media Download Url": "https://example.com/2"},
		{"Date": "2022-01-01 00:00:00 UTC", "Media Download Url": "https://example.com/3"},
	}
	path := writeExport(t, items)

	result, err := Load(path, logger.NewTestLogger())
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	// The loader does not sort; downstream grouping does.
	assert.Equal(t, "https://example.com/1", result.Records[0].SourceURL)
	assert.Equal(t, "https://example.com/2", result.Records[1].SourceURL)
	assert.Equal(t, "https://example.com/3", result.Records[2].SourceURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), logger.NewTestLogger())
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path, logger.NewTestLogger())
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-05-01 10:00:00 UTC", time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2023-05-01 10:00:00", time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"May 1, 2023", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"May 01, 2023", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"January 15, 2019", time.Date(2019, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2023/05/01", "01-05-2023 10:00:00"} {
		_, ok := ParseDate(input)
		assert.False(t, ok, "expected %q to be rejected", input)
	}
}
