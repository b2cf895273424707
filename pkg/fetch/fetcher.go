package fetch

import (
	"time"

	"snapvault/pkg/config"
	"snapvault/pkg/logger"
	"snapvault/pkg/models"
	"snapvault/pkg/ratelimit"
	"snapvault/pkg/storage"
	"snapvault/pkg/ui"
)

// Fetcher downloads each normalized record in order and stores the payload.
// Failures are tallied and skipped; there are no retries.
type Fetcher struct {
	client *Client
	store  *storage.Manager
	pacer  ratelimit.Pacer
	logger logger.Logger
}

// New creates a Fetcher wired to the given storage manager
func New(cfg *config.Config, store *storage.Manager, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Fetcher{
		client: NewClient(cfg.Download.GetTimeout(), cfg.Download.UserAgent, log),
		store:  store,
		pacer:  ratelimit.NewCourtesyPacer(cfg.Pacing.PauseEvery, cfg.Pacing.GetPauseDuration()),
		logger: log,
	}
}

// Run fetches every record sequentially. It returns the successfully
// downloaded records, each carrying its local relative path, plus the
// failure count for the summary line.
func (f *Fetcher) Run(records []models.MediaRecord) ([]models.DownloadedRecord, int) {
	tracker := ui.NewDownloadTracker(len(records))
	downloaded := make([]models.DownloadedRecord, 0, len(records))

	f.logger.InfoWithFields("Starting download batch", map[string]interface{}{
		"items":     len(records),
		"media_dir": f.store.MediaDir(),
	})

	for idx, rec := range records {
		filename := Filename(rec, idx)
		start := time.Now()

		data, contentType, err := f.client.Download(rec.SourceURL)
		if err != nil {
			f.fail(tracker, idx, filename, rec, err)
			continue
		}

		if IsZipPayload(contentType, data) {
			payload, err := ExtractMainFile(data)
			if err != nil {
				f.fail(tracker, idx, filename, rec, err)
				continue
			}
			data = payload
		}

		relPath, err := f.store.SaveMedia(filename, data)
		if err != nil {
			f.fail(tracker, idx, filename, rec, err)
			continue
		}

		downloaded = append(downloaded, models.DownloadedRecord{
			MediaRecord: rec,
			LocalPath:   relPath,
		})
		tracker.Success(idx, filename, len(data), time.Since(start))
		logger.LogDownload(filename, rec.MediaType, true, nil)

		f.pacer.Tick()
	}

	tracker.PrintSummary()

	f.logger.InfoWithFields("Download batch finished", map[string]interface{}{
		"downloaded": len(downloaded),
		"failed":     tracker.Failed,
	})

	return downloaded, tracker.Failed
}

func (f *Fetcher) fail(tracker *ui.DownloadTracker, idx int, filename string, rec models.MediaRecord, err error) {
	tracker.Failure(idx, filename, err.Error())
	logger.LogDownload(filename, rec.MediaType, false, err)
}
