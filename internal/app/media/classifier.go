package media

import (
	"path/filepath"
	"strings"

	apperrors "media2text/internal/app/errors"
)

// Kind classifies an input file by its extension.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".mpeg": true,
	".mpga": true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".aac":  true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
}

// Classify maps a filename to audio or video by extension alone.
// Unknown extensions are rejected; there is no content sniffing.
func Classify(filename string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case audioExtensions[ext]:
		return KindAudio, nil
	case videoExtensions[ext]:
		return KindVideo, nil
	default:
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "extension %q", ext)
	}
}

// SupportedExtensions returns every accepted extension, audio first.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(audioExtensions)+len(videoExtensions))
	for _, set := range []map[string]bool{audioExtensions, videoExtensions} {
		for ext := range set {
			exts = append(exts, ext)
		}
	}
	return exts
}

// IsSupported reports whether the filename would pass Classify.
func IsSupported(filename string) bool {
	_, err := Classify(filename)
	return err == nil
}
