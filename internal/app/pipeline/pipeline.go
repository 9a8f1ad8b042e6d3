// Package pipeline prepares an input media file for transcription:
// classify by extension, extract audio from video, and re-encode when
// the working file would exceed the provider's 25 MiB upload ceiling.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/media"
)

const (
	// SizeThresholdBytes is the hard provider ceiling; anything
	// strictly above it gets re-encoded.
	SizeThresholdBytes int64 = 25 * 1024 * 1024

	// TargetSizeKB leaves margin under the ceiling so the encoded
	// result lands just below 25 MiB.
	TargetSizeKB = 24.9 * 1024
)

// Stage names the pipeline states, mostly for logging.
type Stage string

const (
	StageClassifying     Stage = "classifying"
	StageExtractingAudio Stage = "extracting_audio"
	StageProbingSize     Stage = "probing_size"
	StageCompressing     Stage = "compressing"
	StageReady           Stage = "ready_for_transcription"
)

// Prober reports a media file's duration in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Extractor demuxes a video container into a standalone audio file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, outputPath string) error
}

// Compressor re-encodes audio at a fixed constant bitrate.
type Compressor interface {
	Compress(ctx context.Context, audioPath, outputPath string, bitrateKbps int) error
}

// Job tracks one input file through the pipeline, including every
// intermediate file created on its behalf.
type Job struct {
	SourcePath      string
	SourceName      string
	Kind            media.Kind
	SizeBytes       int64
	DurationSeconds float64
	WorkingPath     string
	Stage           Stage
	Compressed      bool

	prober      Prober
	workDir     string
	cleanupOnce sync.Once
}

// Preparer sequences the media-preparation stages for one job at a
// time. Distinct jobs get uuid-namespaced work directories, so
// separate invocations never collide.
type Preparer struct {
	prober     Prober
	extractor  Extractor
	compressor Compressor
	baseDir    string
	log        *zap.SugaredLogger
}

// Option customizes a Preparer; used by tests to stub the external tools.
type Option func(*Preparer)

func WithProber(p Prober) Option        { return func(pr *Preparer) { pr.prober = p } }
func WithExtractor(e Extractor) Option  { return func(pr *Preparer) { pr.extractor = e } }
func WithCompressor(c Compressor) Option { return func(pr *Preparer) { pr.compressor = c } }
func WithBaseDir(dir string) Option     { return func(pr *Preparer) { pr.baseDir = dir } }

// NewPreparer returns a Preparer backed by ffmpeg/ffprobe.
func NewPreparer(log *zap.SugaredLogger, opts ...Option) *Preparer {
	p := &Preparer{
		prober:     ffprobeProber{},
		extractor:  ffmpegExtractor{},
		compressor: ffmpegCompressor{},
		baseDir:    os.TempDir(),
		log:        log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare runs the pipeline on inputPath and returns a Job whose
// WorkingPath points at a fully written audio file that fits the
// provider ceiling. On any failure every intermediate created so far
// is deleted before the error is returned; the input file is never
// touched. Callers must invoke Job.Cleanup once done.
func (p *Preparer) Prepare(ctx context.Context, inputPath string) (*Job, error) {
	kind, err := media.Classify(inputPath)
	if err != nil {
		return nil, err
	}

	job := &Job{
		SourcePath:  inputPath,
		SourceName:  filepath.Base(inputPath),
		Kind:        kind,
		WorkingPath: inputPath,
		Stage:       StageClassifying,
		prober:      p.prober,
		workDir:     filepath.Join(p.baseDir, "m2t-"+uuid.NewString()),
	}

	if kind == media.KindVideo {
		job.Stage = StageExtractingAudio
		p.log.Infow("extracting audio from video", "source", job.SourceName)

		extracted := job.intermediatePath("extracted.mp3")
		if err := p.extractor.Extract(ctx, job.WorkingPath, extracted); err != nil {
			job.Cleanup()
			return nil, err
		}
		job.WorkingPath = extracted
	}

	job.Stage = StageProbingSize
	info, err := os.Stat(job.WorkingPath)
	if err != nil {
		job.Cleanup()
		return nil, apperrors.Wrapf(apperrors.ErrProbeFailed, "stat %q: %v", job.WorkingPath, err)
	}
	job.SizeBytes = info.Size()

	if job.SizeBytes > SizeThresholdBytes {
		job.Stage = StageCompressing
		p.log.Infow("working file exceeds upload ceiling, compressing",
			"source", job.SourceName, "size_bytes", job.SizeBytes)

		duration, err := p.prober.Duration(ctx, job.WorkingPath)
		if err != nil {
			job.Cleanup()
			return nil, err
		}
		job.DurationSeconds = duration

		bitrate, err := media.PlanBitrate(TargetSizeKB, duration)
		if err != nil {
			job.Cleanup()
			return nil, err
		}

		compressed := job.intermediatePath("compressed.mp3")
		if err := p.compressor.Compress(ctx, job.WorkingPath, compressed, bitrate); err != nil {
			job.Cleanup()
			return nil, err
		}
		job.WorkingPath = compressed
		job.Compressed = true

		if info, err := os.Stat(compressed); err == nil {
			job.SizeBytes = info.Size()
		}
	}

	job.Stage = StageReady
	return job, nil
}

// Duration returns the working file's duration, probing lazily and
// caching the result.
func (j *Job) Duration(ctx context.Context) (float64, error) {
	if j.DurationSeconds > 0 {
		return j.DurationSeconds, nil
	}
	duration, err := j.prober.Duration(ctx, j.WorkingPath)
	if err != nil {
		return 0, err
	}
	j.DurationSeconds = duration
	return duration, nil
}

// Cleanup deletes every intermediate file created during the run. It
// is safe to call more than once and never removes the source file.
func (j *Job) Cleanup() {
	j.cleanupOnce.Do(func() {
		if j.workDir != "" {
			os.RemoveAll(j.workDir)
		}
	})
}

// intermediatePath allocates a file path inside the job's private
// work directory, creating the directory on first use.
func (j *Job) intermediatePath(name string) string {
	os.MkdirAll(j.workDir, 0o755)
	return filepath.Join(j.workDir, fmt.Sprintf("%s_%s", uuid.NewString()[:8], name))
}

// ffmpeg/ffprobe-backed defaults

type ffprobeProber struct{}

func (ffprobeProber) Duration(ctx context.Context, path string) (float64, error) {
	return media.ProbeDuration(ctx, path)
}

type ffmpegExtractor struct{}

func (ffmpegExtractor) Extract(ctx context.Context, videoPath, outputPath string) error {
	return media.ExtractAudio(ctx, videoPath, outputPath)
}

type ffmpegCompressor struct{}

func (ffmpegCompressor) Compress(ctx context.Context, audioPath, outputPath string, bitrateKbps int) error {
	return media.Compress(ctx, audioPath, outputPath, bitrateKbps)
}
