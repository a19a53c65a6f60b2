package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// SyntaxError locates a JSON parse failure inside a catalog document
type SyntaxError struct {
	Line     int
	Column   int
	LineText string
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Caret returns the marker line pointing at the offending column
func (e *SyntaxError) Caret() string {
	return strings.Repeat("-", max(e.Column-1, 0)) + "^"
}

// Report renders the error the way the validate command prints it
func (e *SyntaxError) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: Parse error on line %d:\n", e.Line)
	b.WriteString(e.LineText)
	b.WriteByte('\n')
	b.WriteString(e.Caret())
	b.WriteByte('\n')
	b.WriteString(e.Msg)
	return b.String()
}

// Validate checks that content is well-formed JSON. Syntax failures are
// returned as *SyntaxError with line and column resolved.
func Validate(content []byte) error {
	var doc any
	err := json.Unmarshal(content, &doc)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return locate(content, int(syntaxErr.Offset)-1, syntaxErr.Error())
	}
	return err
}

// ValidateFile runs Validate against a file. The success line goes to
// stdout and failure reports go to stderr. The returned error is non-nil
// when the file is unreadable or invalid.
func ValidateFile(path string, stdout, stderr io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] Cannot read %s: %v\n", path, err)
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := Validate(content); err != nil {
		fmt.Fprintf(stderr, "[ERROR] Invalid JSON in %s:\n", path)
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(stderr, syntaxErr.Report())
		} else {
			fmt.Fprintln(stderr, err)
		}
		return fmt.Errorf("validate %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "[OK] %s is valid JSON\n", path)
	return nil
}

// locate resolves a byte position to a 1-based line and column
func locate(content []byte, pos int, msg string) *SyntaxError {
	pos = min(max(pos, 0), len(content))

	line := 1 + bytes.Count(content[:pos], []byte{'\n'})
	lineStart := bytes.LastIndexByte(content[:pos], '\n') + 1
	column := utf8.RuneCount(content[lineStart:pos]) + 1

	lineEnd := bytes.IndexByte(content[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(content) - lineStart
	}
	text := strings.TrimSuffix(string(content[lineStart:lineStart+lineEnd]), "\r")

	return &SyntaxError{
		Line:     line,
		Column:   column,
		LineText: text,
		Msg:      msg,
	}
}
