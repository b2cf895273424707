package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"snapvault/pkg/config"
	"snapvault/pkg/export"
	"snapvault/pkg/fetch"
	"snapvault/pkg/gallery"
	"snapvault/pkg/logger"
	"snapvault/pkg/storage"
	"snapvault/pkg/ui"
)

const defaultExportFile = "memories_history.json"

var (
	// Build command flags
	outputDir       string
	downloadTimeout time.Duration
	userAgent       string
	pauseEvery      int
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [export.json]",
	Short: "Download all media and generate the offline gallery",
	Long: `Download every item referenced by a Snapchat memories export and
generate a static HTML gallery next to the downloaded files.

The export file defaults to ` + defaultExportFile + ` in the current
directory. The output directory defaults to the export file's parent, and
receives a media/ subdirectory plus the gallery page.

Downloads are sequential with a per-request timeout. Items that fail to
download are skipped; the command only fails when nothing usable remains.`,
	Example: `  # Build from the default export file
  snapvault build

  # Build from a specific export with a custom output directory
  snapvault build ~/Downloads/mydata/memories_history.json --output ./memories

  # Slower servers: raise the timeout, pause more often
  snapvault build --timeout 60s --pause-every 10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: export file's directory)")
	buildCmd.Flags().DurationVar(&downloadTimeout, "timeout", 0, "per-download timeout (default 30s)")
	buildCmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent header for downloads")
	buildCmd.Flags().IntVar(&pauseEvery, "pause-every", -1, "courtesy pause after every N downloads, 0 to disable")
}

func runBuild(cmd *cobra.Command, args []string) {
	inputPath := defaultExportFile
	if len(args) == 1 {
		inputPath = args[0]
	}

	flags := map[string]interface{}{}
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if downloadTimeout > 0 {
		flags["timeout"] = downloadTimeout
	}
	if userAgent != "" {
		flags["user-agent"] = userAgent
	}
	if pauseEvery >= 0 {
		flags["pause-every"] = pauseEvery
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		ui.PrintError("Failed to initialize logging: %v", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	if _, err := os.Stat(inputPath); err != nil {
		ui.PrintError("Export file not found: %s", inputPath)
		os.Exit(1)
	}

	out := cfg.Output.Directory
	if out == "" {
		out = filepath.Dir(inputPath)
	}

	ui.PrintInfo("Export file", inputPath)
	ui.PrintInfo("Output directory", out)

	result, err := export.Load(inputPath, log)
	if err != nil {
		ui.PrintError("Failed to load export: %v", err)
		os.Exit(1)
	}
	if len(result.Records) == 0 {
		ui.PrintError("No usable records in export (checked %d items)", result.Total)
		os.Exit(1)
	}
	ui.PrintInfo("Memories found", fmt.Sprintf("%d valid of %d", len(result.Records), result.Total))

	store, err := storage.NewManager(out, cfg.Output.MediaSubdir)
	if err != nil {
		ui.PrintError("Failed to prepare output directory: %v", err)
		os.Exit(1)
	}

	ui.PrintHighlight("\nDownloading media (this may take a while)...\n")
	downloaded, failed := fetch.New(cfg, store, log).Run(result.Records)
	if len(downloaded) == 0 {
		ui.PrintError("No files were downloaded successfully")
		os.Exit(1)
	}

	groups := gallery.Group(downloaded)
	html, err := gallery.Render(groups)
	if err != nil {
		ui.PrintError("Failed to render gallery: %v", err)
		os.Exit(1)
	}

	galleryPath, err := store.WriteGallery(cfg.Output.GalleryFile, []byte(html))
	if err != nil {
		ui.PrintError("Failed to write gallery: %v", err)
		os.Exit(1)
	}

	log.InfoWithFields("Gallery build complete", map[string]interface{}{
		"downloaded": len(downloaded),
		"failed":     failed,
		"gallery":    galleryPath,
	})

	if failed > 0 {
		ui.PrintWarning("%d downloads failed and were skipped", failed)
	}
	ui.PrintSuccess(fmt.Sprintf("Gallery written to %s", galleryPath))
	ui.PrintInfo("Open in a browser", galleryPath)
}
