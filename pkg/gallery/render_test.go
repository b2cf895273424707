package gallery

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapvault/pkg/models"
)

func record(t *testing.T, date, mediaType, localPath string) models.DownloadedRecord {
	t.Helper()
	capturedAt, err := time.Parse("2006-01-02 15:04:05", date)
	require.NoError(t, err)
	return models.DownloadedRecord{
		MediaRecord: models.MediaRecord{
			CapturedAt: capturedAt,
			MediaType:  mediaType,
			SourceURL:  "https://example.com/media",
		},
		LocalPath: localPath,
	}
}

func TestRenderSingleYearTwoMonths(t *testing.T) {
	groups := Group([]models.DownloadedRecord{
		record(t, "2023-01-15 09:30:00", "Image", "media/20230115_093000_0001.jpg"),
		record(t, "2023-05-01 10:00:00", "Video", "media/20230501_100000_0000.mp4"),
	})

	html, err := Render(groups)
	require.NoError(t, err)

	// Header stats.
	assert.Contains(t, html, "2 memories")
	assert.Contains(t, html, "1 years")
	assert.Contains(t, html, "2 months")

	// One year section, two month sections, May before January.
	assert.Equal(t, 1, strings.Count(html, "class='year-group'"))
	assert.Equal(t, 2, strings.Count(html, "class='month-header'"))
	mayAt := strings.Index(html, ">May</div>")
	janAt := strings.Index(html, ">January</div>")
	require.NotEqual(t, -1, mayAt)
	require.NotEqual(t, -1, janAt)
	assert.Less(t, mayAt, janAt)

	// First month renders expanded, second collapsed.
	assert.Contains(t, html, "class='month open'")
	assert.Equal(t, 1, strings.Count(html, "class='month open'"))

	// Badge counts per month.
	assert.Contains(t, html, "1 video")
	assert.Contains(t, html, "0 photos")
	assert.Contains(t, html, "0 videos")
	assert.Contains(t, html, "1 photo")

	// Media elements reference the relative paths.
	assert.Contains(t, html, "<video class='media' controls preload='metadata' src='media/20230501_100000_0000.mp4'>")
	assert.Contains(t, html, "src='media/20230115_093000_0001.jpg'")
	assert.Contains(t, html, "January 15, 2023")
	assert.Contains(t, html, "May 1, 2023")
}

func TestRenderEmpty(t *testing.T) {
	html, err := Render(nil)
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "0 memories")
	assert.NotContains(t, html, "class='year-group'")
}

func TestRenderYearSummary(t *testing.T) {
	groups := Group([]models.DownloadedRecord{
		record(t, "2022-03-02 08:00:00", "Image", "media/a.jpg"),
		record(t, "2022-03-05 08:00:00", "Image", "media/b.jpg"),
		record(t, "2022-08-09 08:00:00", "Video", "media/c.mp4"),
	})

	html, err := Render(groups)
	require.NoError(t, err)

	assert.Contains(t, html, "3 snaps")
	assert.Contains(t, html, "2 months")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 videos", plural(0, "video"))
	assert.Equal(t, "1 video", plural(1, "video"))
	assert.Equal(t, "2 videos", plural(2, "video"))
	assert.Equal(t, "1 snap", plural(1, "snap"))
}
