package palette

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/apxxxxxxe/contrast/apperror"
	myio "github.com/apxxxxxxe/contrast/io"
)

const (
	fieldSeparator   = "\t"
	channelSeparator = ","
)

// Palette is the ordered list of colors read from one input file.
type Palette struct {
	Entries []Entry

	// Rejected holds lines that had two fields but unusable channel values.
	Rejected []*LineError
}

// LineError reports a rejected input line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Labels returns the labels of entries in order.
func Labels(entries []Entry) []string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label())
	}
	return labels
}

// Captions returns the RGB captions of entries in order.
func Captions(entries []Entry) []string {
	captions := make([]string, 0, len(entries))
	for _, e := range entries {
		captions = append(captions, e.String())
	}
	return captions
}

// ParseLine parses one "label<TAB>r,g,b" record. ok is false when the line
// does not have exactly two fields; such lines are not errors.
func ParseLine(line string) (entry Entry, ok bool, err error) {
	fields := strings.Split(strings.TrimRight(line, "\r"), fieldSeparator)
	if len(fields) != 2 {
		return Entry{}, false, nil
	}

	label := fields[0]
	channels := strings.Split(fields[1], channelSeparator)
	if len(channels) != 3 {
		return Entry{}, true, apperror.NewInvalidInput("%q: want 3 comma-separated channels, got %d", label, len(channels))
	}

	var rgb [3]uint8
	for i, raw := range channels {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Entry{}, true, apperror.NewInvalidInput("%q: channel %q is not an integer", label, raw)
		}
		if v < 0 || v > 255 {
			return Entry{}, true, apperror.NewInvalidInput("%q: channel %d out of range [0,255]", label, v)
		}
		rgb[i] = uint8(v)
	}

	entry, err = NewEntry(label, rgb[0], rgb[1], rgb[2])
	if err != nil {
		return Entry{}, true, err
	}
	return entry, true, nil
}

// Parse builds a palette from raw lines. In strict mode the first rejected
// line is returned as the error; otherwise rejected lines are collected.
// A palette without any entry is an InvalidInputError.
func Parse(lines []string, strict bool) (*Palette, error) {
	p := &Palette{}
	for i, line := range lines {
		entry, ok, err := ParseLine(line)
		if !ok {
			continue
		}
		if err != nil {
			lineErr := &LineError{Line: i + 1, Text: line, Err: err}
			if strict {
				return nil, lineErr
			}
			slog.Warn("rejected palette line",
				slog.Int("line", lineErr.Line),
				slog.String("error", err.Error()),
			)
			p.Rejected = append(p.Rejected, lineErr)
			continue
		}
		p.Entries = append(p.Entries, entry)
	}

	if len(p.Entries) == 0 {
		return nil, apperror.NewInvalidInput("no colors parsed")
	}
	return p, nil
}

// Load reads and parses a tab-separated palette file.
func Load(path string, strict bool) (*Palette, error) {
	if !myio.IsFile(path) {
		if myio.IsDir(path) {
			return nil, apperror.NewInvalidInput("%s is a directory, not a palette file", path)
		}
		return nil, apperror.NewInvalidInput("%s: no such palette file", path)
	}
	lines, err := myio.GetLines(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}
	p, err := Parse(lines, strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("palette loaded",
		slog.String("path", path),
		slog.Int("colors", len(p.Entries)),
		slog.Int("rejected", len(p.Rejected)),
	)
	return p, nil
}
