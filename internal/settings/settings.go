package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// PermissionsKey is the top-level key holding the allow/deny lists.
const PermissionsKey = "permissions"

// Document represents one settings file with flexible JSON structure.
// Uses map[string]interface{} so unknown fields pass through unmodified.
type Document struct {
	data map[string]interface{}
	path string
}

// NewDocument creates an empty in-memory document.
func NewDocument() *Document {
	return &Document{data: make(map[string]interface{})}
}

// LoadFile reads and parses a settings file. Unlike best-effort loaders,
// a missing file is an error here: merge correctness depends on every
// named input actually contributing.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	d := &Document{
		data: make(map[string]interface{}),
		path: path,
	}
	if err := json.Unmarshal(data, &d.data); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrInvalidJSON, path, err)
	}
	return d, nil
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// AllowList returns permissions.allow as a string slice.
// A missing permissions object or allow key yields an empty list.
func (d *Document) AllowList() []string {
	return d.permissionList("allow")
}

// DenyList returns permissions.deny as a string slice.
func (d *Document) DenyList() []string {
	return d.permissionList("deny")
}

func (d *Document) permissionList(key string) []string {
	perms, ok := d.data[PermissionsKey].(map[string]interface{})
	if !ok {
		return nil
	}
	raw, ok := perms[key]
	if !ok {
		return nil
	}
	return interfaceSliceToStrings(raw)
}

// ExtraSettings returns a shallow copy of every top-level key except
// permissions. Values are shared with the document, not deep-copied;
// merge output is assembled once and discarded, so aliasing is safe.
func (d *Document) ExtraSettings() map[string]interface{} {
	extra := make(map[string]interface{}, len(d.data))
	for key, value := range d.data {
		if key == PermissionsKey {
			continue
		}
		extra[key] = value
	}
	return extra
}

// interfaceSliceToStrings converts an interface{} that should be
// []interface{} containing strings to a []string. Non-string elements
// are dropped rather than failing the whole document.
func interfaceSliceToStrings(v interface{}) []string {
	slice, ok := v.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}
