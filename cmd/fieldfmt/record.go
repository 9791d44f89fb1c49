package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// readRecord decodes a YAML or JSON object. "-" reads stdin.
func readRecord(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	switch strings.TrimSpace(path) {
	case "":
		return map[string]any{}, nil
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	record := map[string]any{}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	normaliseRecord(record)
	return record, nil
}

// normaliseRecord turns RFC 3339 strings into times so they resolve as
// dates, whether or not the decoder already did.
func normaliseRecord(values map[string]any) {
	for key, value := range values {
		switch v := value.(type) {
		case string:
			if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
				values[key] = t
			}
		case map[string]any:
			normaliseRecord(v)
		}
	}
}
