package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"snapvault/pkg/config"
	"snapvault/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage snapvault configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (SNAPVAULT_*)
  - Configuration file (.snapvault.yaml)
  - Default values (lowest priority)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.snapvault.yaml'
unless a different path is specified with the --config flag.`,
	Run: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration after merging all sources:
  - Command line flags
  - Environment variables
  - Configuration file
  - Default values`,
	Run: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

const exampleConfig = `# snapvault configuration file
#
# All options can also be set with SNAPVAULT_* environment variables,
# e.g. SNAPVAULT_OUTPUT_DIR, SNAPVAULT_DOWNLOAD_TIMEOUT.

# HTTP download settings
download:
  # Per-request timeout in seconds
  timeout_sec: 30

  # User-Agent header sent with every download. The export's download
  # hosts expect a desktop browser agent.
  user_agent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

# Courtesy pause between downloads
pacing:
  # Pause after every N successful downloads (0 disables pacing)
  pause_every: 20
  # Pause length in milliseconds
  pause_ms: 300

# Output layout
output:
  # Output directory; empty means the export file's parent directory
  directory: ""
  media_subdir: "media"
  gallery_file: "memories_gallery.html"

# Logging
logging:
  level: "info"
  # Optional log file; empty logs to the console only
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = ".snapvault.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists: %s", configPath)
		fmt.Println("\nTo overwrite, first remove the existing file:")
		fmt.Printf("  rm %s\n", configPath)
		os.Exit(1)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		ui.PrintError("Failed to write configuration file: %v", err)
		os.Exit(1)
	}

	ui.PrintSuccess(fmt.Sprintf("Configuration file created at %s", configPath))
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		ui.PrintError("Failed to marshal configuration: %v", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Print(string(data))
}
