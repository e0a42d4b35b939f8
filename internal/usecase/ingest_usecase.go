package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-coach/internal/domain/skill"
	"career-coach/internal/infrastructure/document"

	"go.uber.org/zap"
)

type IngestUsecase interface {
	ExtractSkills(ctx context.Context, text string) []string
	ExtractSkillsFromDocument(ctx context.Context, contentType, filename string, data []byte) ([]string, error)
}

type Ingest struct {
	logger *zap.Logger
}

func NewIngestUsecase(logger *zap.Logger) *Ingest {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingest{logger: logger}
}

// ExtractSkills is a placeholder for real résumé parsing; see skill.Extract.
func (u *Ingest) ExtractSkills(_ context.Context, text string) []string {
	return skill.Extract(text)
}

func (u *Ingest) ExtractSkillsFromDocument(ctx context.Context, contentType, filename string, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	ct := document.DetectContentType(contentType, filename)
	text, err := document.Extract(ct, data)
	if err != nil {
		if errors.Is(err, document.ErrUnsupported) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, ct)
		}
		u.logger.Info("document extraction failed",
			zap.String("filename", filename),
			zap.String("content_type", ct),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	skills := u.ExtractSkills(ctx, text)
	u.logger.Debug("document ingested",
		zap.String("filename", filename),
		zap.String("content_type", ct),
		zap.Int("bytes", len(data)),
		zap.Int("skills", len(skills)),
	)
	return skills, nil
}
