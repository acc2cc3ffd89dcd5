package io

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"GC-Content/gc_content/common"

	"github.com/spf13/afero"
)

// ErrNoSequence is returned when a file holds no sequence data.
var ErrNoSequence = errors.New("no sequence data")

// ReadSequence reads a DNA sequence from a file.
func ReadSequence(fs afero.Fs, filePath string) (string, error) {
	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadRecords reads the records of a FASTA file. A file without a '>' header
// is read as a single record named after the file. Lines starting with ';'
// are comments, and whitespace inside sequence lines is dropped.
func ReadRecords(fs afero.Fs, filePath string) ([]common.Record, error) {
	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	var (
		records []common.Record
		current *common.Record
		body    strings.Builder
	)
	flush := func() {
		if current != nil {
			current.Sequence = body.String()
			records = append(records, *current)
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			current = &common.Record{Name: headerName(line, len(records)+1)}
		default:
			if current == nil {
				current = &common.Record{Name: filepath.Base(filePath)}
			}
			body.WriteString(stripSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", filePath, err)
	}
	flush()

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", filePath, ErrNoSequence)
	}
	return records, nil
}

// headerName returns the first word of a FASTA header, or a positional name
// when the header is empty.
func headerName(line string, index int) string {
	fields := strings.Fields(strings.TrimPrefix(line, ">"))
	if len(fields) == 0 {
		return fmt.Sprintf("record%d", index)
	}
	return fields[0]
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
