// Package textcodec decodes raw bytes from files and command output into strings.
package textcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/runoshun/hostutil/internal/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// IsUTF8 reports whether name refers to UTF-8 (the empty name does).
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

// Lookup resolves a WHATWG encoding label such as "latin1" or "shift_jis".
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Decode converts data to a string using the named encoding.
// UTF-8 is strict: invalid sequences fail with domain.ErrInvalidEncoding
// instead of being replaced.
func Decode(data []byte, name string) (string, error) {
	if IsUTF8(name) {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w %s", domain.ErrInvalidEncoding, domain.DefaultEncoding)
		}
		return string(data), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", domain.ErrInvalidEncoding, name, err)
	}
	return string(out), nil
}

// Validate checks that name is a known encoding.
func Validate(name string) error {
	if IsUTF8(name) {
		return nil
	}
	_, err := Lookup(name)
	return err
}
