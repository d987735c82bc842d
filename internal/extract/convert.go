package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CategoryDocument is the minimal settings file an extraction
// produces: an allow list and nothing else.
type CategoryDocument struct {
	Permissions struct {
		Allow []string `json:"allow"`
	} `json:"permissions"`
}

// Result records the outcome of converting one markdown file.
type Result struct {
	Source   string
	Output   string
	Patterns int
	Err      error
}

// ConvertFile extracts patterns from one markdown file and writes the
// sibling JSON file (same base name, .json extension). The markdown
// file is never modified.
func ConvertFile(mdPath string) (Result, error) {
	res := Result{Source: mdPath}

	f, err := os.Open(mdPath)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", mdPath, err)
	}
	defer f.Close()

	patterns, err := Patterns(f)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", mdPath, err)
	}

	var doc CategoryDocument
	doc.Permissions.Allow = patterns
	if doc.Permissions.Allow == nil {
		doc.Permissions.Allow = []string{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return res, fmt.Errorf("serializing patterns for %s: %w", mdPath, err)
	}
	data = append(data, '\n')

	jsonPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".json"
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	res.Output = jsonPath
	res.Patterns = len(patterns)
	return res, nil
}

// ConvertDir converts every markdown file in dir whose name starts
// with prefix. Files are processed in lexical order, independently: a
// file that cannot be converted is recorded with its error and the
// remaining files are still handled.
func ConvertDir(dir, prefix string) ([]Result, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.md"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	results := make([]Result, 0, len(matches))
	for _, mdPath := range matches {
		res, err := ConvertFile(mdPath)
		res.Err = err
		results = append(results, res)
	}
	return results, nil
}
