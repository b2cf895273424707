package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Manager handles file storage for downloaded media and the gallery page
type Manager struct {
	outputDir   string
	mediaSubdir string
	saved       int
}

// NewManager creates a new storage manager rooted at outputDir, creating
// the media subdirectory if it does not exist.
func NewManager(outputDir, mediaSubdir string) (*Manager, error) {
	mediaDir := filepath.Join(outputDir, mediaSubdir)
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	return &Manager{
		outputDir:   outputDir,
		mediaSubdir: mediaSubdir,
	}, nil
}

// SaveMedia writes a media payload under the media subdirectory and returns
// its path relative to the output directory, using forward slashes so it can
// be embedded in HTML as-is.
func (m *Manager) SaveMedia(filename string, data []byte) (string, error) {
	target := filepath.Join(m.outputDir, m.mediaSubdir, filename)

	if err := writeAtomic(target, data); err != nil {
		return "", fmt.Errorf("failed to save media file: %w", err)
	}

	m.saved++
	return path.Join(m.mediaSubdir, filename), nil
}

// WriteGallery writes the rendered gallery page next to the media directory
// and returns its full path.
func (m *Manager) WriteGallery(filename string, html []byte) (string, error) {
	target := filepath.Join(m.outputDir, filename)

	if err := writeAtomic(target, html); err != nil {
		return "", fmt.Errorf("failed to write gallery: %w", err)
	}

	return target, nil
}

// writeAtomic writes to a temporary file and renames it into place so a
// crash mid-write cannot leave a truncated file behind.
func writeAtomic(target string, data []byte) error {
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}

// OutputDir returns the output directory path
func (m *Manager) OutputDir() string {
	return m.outputDir
}

// MediaDir returns the full path of the media subdirectory
func (m *Manager) MediaDir() string {
	return filepath.Join(m.outputDir, m.mediaSubdir)
}

// SavedCount returns the number of media files saved so far
func (m *Manager) SavedCount() int {
	return m.saved
}
