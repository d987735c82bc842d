package settings

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeOptions control JSON serialization. These are presentation
// only; both modes produce the same logical document.
type EncodeOptions struct {
	// Indent is the indentation width in spaces. Ignored when Compact
	// is set.
	Indent int

	// Compact emits JSON without inter-token whitespace.
	Compact bool
}

// Encode serializes a merged document. The output always ends with a
// trailing newline so it is friendly to shells and diffs.
func Encode(doc map[string]interface{}, opts EncodeOptions) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if opts.Compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", strings.Repeat(" ", opts.Indent))
	}
	if err != nil {
		return nil, fmt.Errorf("serializing settings: %w", err)
	}
	return append(data, '\n'), nil
}
