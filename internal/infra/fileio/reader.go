// Package fileio reads text files from the host file system.
package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/runoshun/hostutil/internal/infra/textcodec"
)

// maxLineSize bounds a single line in Lines.
const maxLineSize = 1024 * 1024

// Ensure Reader implements domain.FileReader interface.
var _ domain.FileReader = (*Reader)(nil)

// Reader implements domain.FileReader.
// Fields are ordered to minimize memory padding.
type Reader struct {
	encoding string
	maxBytes int64
}

// NewReader creates a Reader that decodes with encoding and refuses files
// larger than maxBytes. maxBytes <= 0 means unlimited.
func NewReader(encoding string, maxBytes int64) *Reader {
	return &Reader{encoding: encoding, maxBytes: maxBytes}
}

// ReadFile reads the whole file at path and decodes it as text.
// Open and read failures are returned as the *fs.PathError from the os package.
func (r *Reader) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if r.maxBytes > 0 {
		src = io.LimitReader(f, r.maxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if r.maxBytes > 0 && int64(len(data)) > r.maxBytes {
		return "", fmt.Errorf("%s: %w (%d bytes)", path, domain.ErrFileTooLarge, r.maxBytes)
	}

	text, err := textcodec.Decode(data, r.encoding)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Lines streams the file at path line by line.
// The size limit does not apply since the file is never held in memory.
func (r *Reader) Lines(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, err := textcodec.Decode(scanner.Bytes(), r.encoding)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
