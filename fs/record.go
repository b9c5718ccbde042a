package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/fwojciec/docsnip"
)

// Ensure RecordStore implements docsnip.RecordStore at compile time.
var _ docsnip.RecordStore = (*RecordStore)(nil)

// RecordStore stores records as <name>.json files in a directory.
type RecordStore struct {
	dir       string
	overwrite bool
}

// NewRecordStore creates a new RecordStore rooted at dir.
func NewRecordStore(dir string, overwrite bool) *RecordStore {
	return &RecordStore{dir: dir, overwrite: overwrite}
}

// CreateRecord writes the record as JSON.
func (s *RecordStore) CreateRecord(ctx context.Context, rec *docsnip.Record) (bool, error) {
	if err := rec.Validate(); err != nil {
		return false, err
	}

	data, err := EncodeRecord(rec)
	if err != nil {
		return false, err
	}

	return writeFile(filepath.Join(s.dir, rec.Name+".json"), data, s.overwrite)
}

// FindRecords reads every .json file in the directory.
func (s *RecordStore) FindRecords(ctx context.Context) ([]*docsnip.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docsnip.Errorf(docsnip.ENOTFOUND, "records directory %q does not exist", s.dir)
		}
		return nil, err
	}

	var records []*docsnip.Record
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var rec docsnip.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// Clean removes the regular files in the directory. Subdirectories are kept.
func (s *RecordStore) Clean(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord returns the JSON form of a record: two-space indentation,
// HTML characters kept literal and non-ASCII characters escaped as \uXXXX.
func EncodeRecord(rec *docsnip.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return asciiEscape(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// asciiEscape replaces every non-ASCII rune with its JSON \u escape.
// Runes outside the basic multilingual plane become surrogate pairs.
func asciiEscape(data []byte) []byte {
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return []byte(b.String())
}
