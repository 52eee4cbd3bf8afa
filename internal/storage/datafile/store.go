package datafile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"skideal/internal/domain"
)

const maxLine = 4 << 20

var errInvalidUTF8 = errors.New("line is not valid UTF-8")

// ParseError reports a malformed line. Line numbers are 1-based.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads a JSON-lines directory file. It holds no records between
// calls: every Load goes back to disk so edits to the sheet export show up
// on the next tool call.
type Store struct{ path string }

func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

// Load parses every non-empty line in file order. One bad line fails the
// whole load.
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []domain.Record
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		if !utf8.Valid(b) {
			return nil, &ParseError{Path: s.path, Line: line, Err: errInvalidUTF8}
		}
		var rec domain.Record
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, &ParseError{Path: s.path, Line: line, Err: err}
		}
		if rec == nil {
			return nil, &ParseError{Path: s.path, Line: line, Err: fmt.Errorf("line is not an object")}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return out, nil
}

// ReadText returns a static text document such as the kosher department
// brief. It is re-read on every call like the record files.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(bytes.TrimSpace(b)), nil
}
