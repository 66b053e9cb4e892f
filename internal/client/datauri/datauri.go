// Package datauri converts binary file payloads to and from a text-safe
// data-URI representation ("data:<media-type>;base64,<payload>") so they can
// live inside the JSON draft blob persisted by the draft store.
package datauri

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/common"
)

const (
	prefix = "data:"
	marker = ";base64,"
)

// DefaultMediaType is assumed when an encoded reference carries no
// recognizable media-type marker.
const DefaultMediaType = "application/octet-stream"

// Encode produces the text-safe form of a raw payload. An empty mediaType
// is replaced with DefaultMediaType.
func Encode(mediaType string, data []byte) string {
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	return prefix + mediaType + marker + base64.StdEncoding.EncodeToString(data)
}

// EncodeFile encodes a live in-memory file.
func EncodeFile(f *models.LiveFile) (string, error) {
	if f == nil {
		return "", common.ErrNoLiveFile
	}
	return Encode(f.MediaType, f.Data), nil
}

// Decode parses an encoded reference back into a live file. The media type
// is taken from the marker, falling back to DefaultMediaType. When filename
// has no extension, one is derived from the detected media type (see
// extensionFor). Decode(Encode(f)) reconstructs f byte for byte.
func Decode(ref, filename string) (*models.LiveFile, error) {
	if !strings.HasPrefix(ref, prefix) {
		return nil, fmt.Errorf("%w: missing %q prefix", common.ErrMalformedDataRef, prefix)
	}
	rest := ref[len(prefix):]
	idx := strings.Index(rest, marker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: missing base64 marker", common.ErrMalformedDataRef)
	}

	mediaType := rest[:idx]
	if mediaType == "" {
		mediaType = DefaultMediaType
	}

	data, err := base64.StdEncoding.DecodeString(rest[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	name := filename
	if filepath.Ext(name) == "" {
		name += extensionFor(mediaType)
	}

	return &models.LiveFile{Name: name, MediaType: mediaType, Data: data}, nil
}

// extensionFor mirrors the filename policy of the previous front end: PNG
// keeps .png, every other detected type falls back to .jpg. Restored files
// therefore keep the exact names the old client produced.
func extensionFor(mediaType string) string {
	if mediaType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
