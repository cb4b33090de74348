package meeting

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	apperrors "github.com/meeting-summarizer/meeting-summarizer/errors"
	"github.com/meeting-summarizer/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer/meeting-summarizer/internal/domain/repositories"
	"github.com/meeting-summarizer/meeting-summarizer/pkg/metrics"
)

// Transcriber converts raw audio content into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// Generator produces the free-text analysis for a transcript
type Generator interface {
	GenerateAnalysis(ctx context.Context, transcript string) (string, error)
}

// Result is the outcome of one successful pipeline run
type Result struct {
	MeetingID   uint
	Transcript  string
	Summary     string
	ActionItems string
}

// Service defines the upload-processing pipeline
type Service interface {
	ProcessUpload(ctx context.Context, filename string, audio io.Reader) (*Result, error)
	GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error)
}

type service struct {
	meetingRepo repositories.MeetingRepository
	transcriber Transcriber
	generator   Generator
	parser      *Parser
	logger      *zap.Logger
}

// NewService constructs the pipeline service
func NewService(
	meetingRepo repositories.MeetingRepository,
	transcriber Transcriber,
	generator Generator,
	logger *zap.Logger,
) Service {
	return &service{
		meetingRepo: meetingRepo,
		transcriber: transcriber,
		generator:   generator,
		parser:      NewParser(),
		logger:      logger,
	}
}

// ProcessUpload runs the sequential pipeline for one validated upload:
// stage, transcribe, summarize, parse, persist. A record is committed
// only when every prior step succeeded; any failure aborts the rest.
// The filename must already be validated by the caller.
func (s *service) ProcessUpload(ctx context.Context, filename string, audio io.Reader) (*Result, error) {
	stagedPath, err := s.stageUpload(audio)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("staging_error").Inc()
		return nil, apperrors.ErrInternal(fmt.Errorf("failed to stage upload: %w", err))
	}
	defer os.Remove(stagedPath)

	transcript, err := s.transcribe(ctx, stagedPath)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("transcription_error").Inc()
		if s.logger != nil {
			s.logger.Error("transcription failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("transcription completed",
			zap.String("filename", filename),
			zap.Int("transcript_length", len(transcript)),
		)
	}

	generated, err := s.generate(ctx, transcript)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("generation_error").Inc()
		if s.logger != nil {
			s.logger.Error("summary generation failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrSummaryGenerationFailed(err)
	}

	summary, actionItems, err := s.parser.Parse(GenerationResult{Text: generated})
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("parse_error").Inc()
		if s.logger != nil {
			s.logger.Error("generation result did not match expected format",
				zap.String("filename", filename),
				zap.Int("response_length", len(generated)),
			)
		}
		return nil, err
	}

	record := entities.NewMeeting(sanitizeFilename(filename), transcript, summary, actionItems)
	if err := s.meetingRepo.Create(ctx, record); err != nil {
		metrics.UploadsProcessed.WithLabelValues("persistence_error").Inc()
		if s.logger != nil {
			s.logger.Error("failed to persist meeting record", zap.Error(err))
		}
		return nil, apperrors.ErrPersistenceFailed(err)
	}

	metrics.UploadsProcessed.WithLabelValues("success").Inc()
	if s.logger != nil {
		s.logger.Info("meeting processed",
			zap.Uint("meeting_id", record.ID),
			zap.String("filename", record.Filename),
		)
	}

	return &Result{
		MeetingID:   record.ID,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: actionItems,
	}, nil
}

// GetMeeting looks up a stored record by ID
func (s *service) GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error) {
	record, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPersistenceFailed(err)
	}
	if record == nil {
		return nil, apperrors.ErrNotFound("Meeting")
	}
	return record, nil
}

// stageUpload writes the uploaded bytes to a request-scoped temporary
// file. The caller removes the file on every exit path.
func (s *service) stageUpload(audio io.Reader) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("meeting-upload-%s.mp3", uuid.NewString()))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, audio); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *service) transcribe(ctx context.Context, stagedPath string) (string, error) {
	timer := prometheus.NewTimer(metrics.PipelineStageDuration.WithLabelValues("transcribe"))
	defer timer.ObserveDuration()

	f, err := os.Open(stagedPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.transcriber.Transcribe(ctx, f)
}

func (s *service) generate(ctx context.Context, transcript string) (string, error) {
	timer := prometheus.NewTimer(metrics.PipelineStageDuration.WithLabelValues("generate"))
	defer timer.ObserveDuration()

	return s.generator.GenerateAnalysis(ctx, transcript)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename reduces an uploaded filename to a safe basename
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload.mp3"
	}
	return name
}
