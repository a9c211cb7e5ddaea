package dataset

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Strings is a locale string table keyed by locale id
type Strings map[string]string

// ParseStrings reads a flat strings.json object
func ParseStrings(data []byte) (Strings, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse strings.json: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("parse strings.json: expected an object")
	}

	strs := make(Strings)
	root.ForEach(func(key, value gjson.Result) bool {
		strs[key.String()] = value.String()
		return true
	})
	return strs, nil
}

// Get returns the string for id, or fallback when id is empty or unknown
func (s Strings) Get(id, fallback string) string {
	if id == "" {
		return fallback
	}
	if v, ok := s[id]; ok {
		return v
	}
	return fallback
}
