package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/movie-costar/models"
)

// maxLineBytes bounds one corpus record. Large ensembles produce long lines.
const maxLineBytes = 1 << 20

// errSkipRecord marks a record the format defines as ignorable.
var errSkipRecord = errors.New("record skipped")

// ParseError reports a malformed corpus line.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one parsed corpus line.
type Record struct {
	Title       string
	ReleaseYear int
	Cast        []models.Actor
}

// ParseLine parses "Title (Year)/Last, First/Last, First". A year field
// holding a comma marks a record to skip and returns errSkipRecord.
func ParseLine(line string) (Record, error) {
	elements := strings.Split(line, "/")
	head := elements[0]

	open := strings.LastIndex(head, "(")
	closing := strings.LastIndex(head, ")")
	if open < 0 || closing < open {
		return Record{}, fmt.Errorf("missing release year in %q", head)
	}

	yearField := head[open+1 : closing]
	if strings.Contains(yearField, ",") {
		return Record{}, errSkipRecord
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearField))
	if err != nil {
		return Record{}, fmt.Errorf("invalid release year %q", yearField)
	}

	rec := Record{
		Title:       strings.TrimSpace(head[:open]),
		ReleaseYear: year,
		Cast:        make([]models.Actor, 0, len(elements)-1),
	}
	for _, element := range elements[1:] {
		name := strings.SplitN(element, ", ", 2)
		lastName := strings.TrimSpace(name[0])
		firstName := ""
		if len(name) > 1 {
			firstName = strings.TrimSpace(name[1])
		}
		if lastName == "" && firstName == "" {
			continue
		}
		rec.Cast = append(rec.Cast, models.NewActor(lastName, firstName))
	}
	return rec, nil
}

// ReadStats counts what a reader produced.
type ReadStats struct {
	Lines   int `json:"lines" yaml:"lines"`
	Records int `json:"records" yaml:"records"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// ReadRecords parses every non-blank line of r. source names r in errors.
func ReadRecords(r io.Reader, source string) ([]Record, ReadStats, error) {
	var stats ReadStats
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseLine(line)
		if errors.Is(err, errSkipRecord) {
			stats.Skipped++
			continue
		}
		if err != nil {
			return nil, stats, &ParseError{Source: source, Line: stats.Lines, Err: err}
		}
		records = append(records, rec)
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read %s: %w", source, err)
	}

	return records, stats, nil
}
