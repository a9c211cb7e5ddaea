package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/civcards/internal/model"
)

// AllRecordsFile is the combined output file, keyed by civilization name
const AllRecordsFile = "all_civilizations.json"

// ErrRecordNotFound is returned when no record file exists for a name
var ErrRecordNotFound = errors.New("record not found")

// RecordFileName returns the file name used for a civilization record
func RecordFileName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name) + ".json"
}

// WriteRecord writes <dataDir>/<name>.json
func WriteRecord(dataDir string, rec *model.CivilizationRecord) (string, error) {
	data, err := marshalIndent(rec)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", rec.ID, err)
	}

	path := filepath.Join(dataDir, RecordFileName(rec.Name))
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll writes the combined file: a JSON object keyed by civilization name
// in record order. A repeated name keeps its first position and the last record.
func WriteAll(dataDir string, records []*model.CivilizationRecord) (string, error) {
	var names []string
	byName := make(map[string]*model.CivilizationRecord)
	for _, rec := range records {
		if _, ok := byName[rec.Name]; !ok {
			names = append(names, rec.Name)
		}
		byName[rec.Name] = rec
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := marshal(name)
		if err != nil {
			return "", fmt.Errorf("marshal name: %w", err)
		}
		value, err := marshal(byName[name])
		if err != nil {
			return "", fmt.Errorf("marshal %s: %w", name, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("indent %s: %w", AllRecordsFile, err)
	}
	out.WriteByte('\n')

	path := filepath.Join(dataDir, AllRecordsFile)
	if err := writeFile(path, out.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// LoadRecord reads <dataDir>/<name>.json
func LoadRecord(dataDir, name string) (*model.CivilizationRecord, error) {
	path := filepath.Join(dataDir, RecordFileName(name))
	rec, err := readRecord(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return rec, nil
}

// LoadRecords reads every per-civilization file in dataDir, sorted by file
// name. The combined file is skipped.
func LoadRecords(dataDir string) ([]*model.CivilizationRecord, error) {
	if _, err := os.Stat(dataDir); err != nil {
		return nil, fmt.Errorf("load records: %w", ErrRecordNotFound)
	}

	paths, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	var records []*model.CivilizationRecord
	for _, path := range paths {
		if filepath.Base(path) == AllRecordsFile {
			continue
		}
		rec, err := readRecord(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readRecord(path string) (*model.CivilizationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var rec model.CivilizationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return &rec, nil
}

// marshal encodes v without HTML escaping
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
