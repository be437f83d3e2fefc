// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/hostutil/internal/domain"
)

// FileReaderFactory builds a FileReader for an encoding and size limit.
type FileReaderFactory func(encoding string, maxBytes int64) domain.FileReader

// ReadFileInput contains the parameters for reading a file.
// Fields are ordered to minimize memory padding.
type ReadFileInput struct {
	OnLine   func(line string) error // Stream lines to this callback instead of returning Content
	MaxBytes *int64                  // Overrides the configured size limit
	Path     string                  // File path (required)
	Encoding string                  // Overrides the configured encoding
}

// ReadFileOutput contains the result of reading a file.
type ReadFileOutput struct {
	Content string // Decoded contents; empty when streaming
}

// ReadFile is the use case for reading a text file.
type ReadFile struct {
	newReader FileReaderFactory
	logger    *slog.Logger
	cfg       domain.ReadConfig
}

// NewReadFile creates a new ReadFile use case.
func NewReadFile(newReader FileReaderFactory, cfg domain.ReadConfig, logger *slog.Logger) *ReadFile {
	return &ReadFile{
		newReader: newReader,
		cfg:       cfg,
		logger:    logger,
	}
}

// Execute reads the file. File access errors are returned unchanged.
func (uc *ReadFile) Execute(_ context.Context, in ReadFileInput) (*ReadFileOutput, error) {
	if in.Path == "" {
		return nil, domain.ErrEmptyPath
	}

	encoding := uc.cfg.Encoding
	if in.Encoding != "" {
		encoding = in.Encoding
	}
	maxBytes := uc.cfg.MaxBytes
	if in.MaxBytes != nil {
		maxBytes = *in.MaxBytes
	}

	reader := uc.newReader(encoding, maxBytes)
	uc.logger.Debug("read file", "path", in.Path, "encoding", encoding, "max_bytes", maxBytes, "stream", in.OnLine != nil)

	if in.OnLine != nil {
		if err := reader.Lines(in.Path, in.OnLine); err != nil {
			return nil, err
		}
		return &ReadFileOutput{}, nil
	}

	content, err := reader.ReadFile(in.Path)
	if err != nil {
		return nil, err
	}
	return &ReadFileOutput{Content: content}, nil
}
