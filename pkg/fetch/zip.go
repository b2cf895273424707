package fetch

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// zipMagic is the local file header signature of a ZIP archive.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// mediaExtensions are the entry suffixes the fallback search accepts when
// no "-main." entry exists in a wrapped download.
var mediaExtensions = []string{".mp4", ".mov", ".jpg", ".jpeg", ".png", ".heic"}

// IsZipPayload reports whether a downloaded body is a ZIP container, judged
// by the response content type and the archive magic number.
func IsZipPayload(contentType string, data []byte) bool {
	return strings.Contains(contentType, "zip") || bytes.HasPrefix(data, zipMagic)
}

// ExtractMainFile pulls the primary media payload out of a ZIP-wrapped
// download. The export bundles the media as an entry containing "-main."
// alongside overlay layers (drawn captions, stickers). When no "-main."
// entry exists, the first non-overlay entry with a known media extension is
// taken instead. This fallback is a heuristic carried over from the export
// format's observed behavior.
func ExtractMainFile(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{
			Type:    ErrorTypePayload,
			Message: fmt.Sprintf("invalid zip archive: %v", err),
		}
	}

	var main *zip.File
	for _, f := range zr.File {
		if strings.Contains(f.Name, "-main.") {
			main = f
			break
		}
	}

	if main == nil {
		for _, f := range zr.File {
			name := strings.ToLower(f.Name)
			if strings.Contains(name, "overlay") {
				continue
			}
			if hasMediaExtension(name) {
				main = f
				break
			}
		}
	}

	if main == nil {
		return nil, &Error{
			Type:    ErrorTypePayload,
			Message: "no media file found in archive",
		}
	}

	rc, err := main.Open()
	if err != nil {
		return nil, &Error{
			Type:    ErrorTypePayload,
			Message: fmt.Sprintf("failed to open archive entry %q: %v", main.Name, err),
		}
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, &Error{
			Type:    ErrorTypePayload,
			Message: fmt.Sprintf("failed to read archive entry %q: %v", main.Name, err),
		}
	}

	return payload, nil
}

func hasMediaExtension(name string) bool {
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
