// Package extract converts markdown permission catalogs into minimal
// Claude Code settings files. A catalog lists command patterns as
// bullet points with the pattern wrapped in backticks; everything else
// in the document (headers, prose, bare bullets) is ignored.
package extract

import (
	"bufio"
	"io"
	"strings"
)

// PatternFromLine extracts a permission pattern from one markdown
// line. A line qualifies only if, after leading whitespace, it starts
// with "* " or "- ". From a qualifying line the contents of the first
// backtick pair are taken verbatim; later backtick spans on the same
// line are ignored. Returns ok=false for non-bullet lines, bullets
// without a backtick span, and empty spans.
func PatternFromLine(line string) (pattern string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "* ") && !strings.HasPrefix(trimmed, "- ") {
		return "", false
	}

	open := strings.IndexByte(trimmed, '`')
	if open < 0 {
		return "", false
	}
	rest := trimmed[open+1:]
	end := strings.IndexByte(rest, '`')
	if end <= 0 {
		return "", false
	}
	return rest[:end], true
}

// Patterns scans a document and returns every extracted pattern in
// source-line order. Duplicates are kept; deduplication happens later
// if the outputs are merged.
func Patterns(r io.Reader) ([]string, error) {
	var patterns []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if pattern, ok := PatternFromLine(scanner.Text()); ok {
			patterns = append(patterns, pattern)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
