// Package document reads and writes dashboard documents for the explorer
// CLI. JSON, YAML, and JSONL (one document per line) files are supported.
// Writes are atomic: temp file, fsync, rename.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/p3rf/explorer/pkg/types"
)

// Format is a document file encoding.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatJSONL Format = "jsonl"
)

// ErrUnsupportedFormat is returned for file extensions with no codec.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".jsonl":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// File is the parsed content of one document file.
type File struct {
	Format Format
	Docs   []types.Document
	// Lines holds the 1-based source line of each entry in Docs. JSON and
	// YAML documents start at line 1.
	Lines []int
	// Skipped lists the JSONL lines that did not hold a JSON object. Saving
	// Docs back over such a file would drop them.
	Skipped []int
}

// Load reads every document in path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	file := File{Format: format}

	if format == FormatJSONL {
		records, skipped, err := readJSONL(path)
		if err != nil {
			return file, err
		}
		file.Docs = make([]types.Document, 0, len(records))
		file.Lines = make([]int, 0, len(records))
		file.Skipped = skipped
		for _, rec := range records {
			doc, err := decodeJSON(rec.raw)
			if err != nil {
				file.Skipped = append(file.Skipped, rec.line)
				continue
			}
			file.Docs = append(file.Docs, doc)
			file.Lines = append(file.Lines, rec.line)
		}
		sort.Ints(file.Skipped)
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc types.Document
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	}
	if err != nil {
		return file, fmt.Errorf("parsing %s: %w", path, err)
	}
	file.Docs = []types.Document{doc}
	file.Lines = []int{1}
	return file, nil
}

// Save writes docs to path in format. JSON and YAML files hold exactly one
// document.
func Save(path string, docs []types.Document, format Format) error {
	switch format {
	case FormatJSONL:
		records := make([]json.RawMessage, 0, len(docs))
		for _, doc := range docs {
			b, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("encoding document: %w", err)
			}
			records = append(records, b)
		}
		return writeJSONL(path, records)
	case FormatJSON, FormatYAML:
		if len(docs) != 1 {
			return fmt.Errorf("%s file %s must hold one document, got %d", format, path, len(docs))
		}
		var (
			data []byte
			err  error
		)
		if format == FormatJSON {
			data, err = json.MarshalIndent(docs[0], "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(map[string]any(docs[0]))
		}
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		return writeFile(path, data)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// decodeJSON parses one JSON object. Numbers are kept as json.Number so
// that re-encoding does not change them.
func decodeJSON(data []byte) (types.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc types.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document is not an object")
	}
	return doc, nil
}

func decodeYAML(data []byte) (types.Document, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document is not a mapping")
	}
	return types.Document(doc), nil
}
