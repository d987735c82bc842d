package settings

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveInputs expands glob arguments against the filesystem and
// returns the concrete file list in argument order. Literal paths pass
// through untouched (existence is checked later at load time, so the
// error can name the file). Every glob expression must match at least
// one file. Repeated paths are dropped, keeping first position.
func ResolveInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrNoInputFiles
	}

	var expanded []string
	for _, arg := range args {
		if !containsGlobMeta(arg) {
			expanded = append(expanded, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatchingFiles, arg)
		}
		expanded = append(expanded, matches...)
	}

	seen := make(map[string]struct{}, len(expanded))
	unique := make([]string, 0, len(expanded))
	for _, path := range expanded {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		unique = append(unique, path)
	}

	if len(unique) == 0 {
		return nil, ErrNoInputFiles
	}
	return unique, nil
}

func containsGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
