package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// loadVars reads a variable table from a file: a YAML mapping for .yaml/.yml
// extensions, otherwise CSV with one name,value record per line.
func loadVars(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLVars(data)
	default:
		return parseCSVVars(data)
	}
}

func parseCSVVars(data []byte) (map[string]string, error) {
	rd := csv.NewReader(bytes.NewReader(data))
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true
	recs, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(recs))
	for i, rec := range recs {
		if len(rec) < 2 {
			return nil, fmt.Errorf("variables line %d: want name,value", i+1)
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("variables line %d: empty name", i+1)
		}
		m[name] = strings.TrimSpace(rec[1])
	}
	return m, nil
}

func parseYAMLVars(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		m[k] = fmt.Sprint(v)
	}
	return m, nil
}
