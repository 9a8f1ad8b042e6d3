package media

import (
	"context"
	"errors"

	apperrors "media2text/internal/app/errors"
)

// ExtractAudio strips the video stream from a container and writes an
// mp3 at outputPath. The new file is the caller's to delete.
func ExtractAudio(ctx context.Context, videoPath, outputPath string) error {
	_, stderr, err := runTool(ctx, DefaultTranscodeTimeout, ffmpegBinary,
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-y", outputPath,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrToolNotFound) {
			return err
		}
		return apperrors.Wrapf(apperrors.ErrExtractionFailed, "ffmpeg: %v, stderr: %s", err, stderr)
	}
	return nil
}
