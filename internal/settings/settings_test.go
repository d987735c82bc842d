package settings

import (
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/ccperms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     string
		missing     bool
		wantErr     error
		checkResult func(t *testing.T, d *Document)
	}{
		"missing file": {
			missing: true,
			wantErr: ErrFileNotFound,
		},
		"malformed JSON": {
			content: `{invalid json}`,
			wantErr: ErrInvalidJSON,
		},
		"valid JSON with permissions": {
			content: `{"permissions": {"allow": ["Bash(foo:*)"], "deny": ["Bash(rm:*)"]}}`,
			checkResult: func(t *testing.T, d *Document) {
				assert.Equal(t, []string{"Bash(foo:*)"}, d.AllowList())
				assert.Equal(t, []string{"Bash(rm:*)"}, d.DenyList())
			},
		},
		"no permissions key": {
			content: `{"model": "opus"}`,
			checkResult: func(t *testing.T, d *Document) {
				assert.Empty(t, d.AllowList())
				assert.Empty(t, d.DenyList())
			},
		},
		"permissions without lists": {
			content: `{"permissions": {}}`,
			checkResult: func(t *testing.T, d *Document) {
				assert.Empty(t, d.AllowList())
				assert.Empty(t, d.DenyList())
			},
		},
		"non-string list elements are dropped": {
			content: `{"permissions": {"allow": ["Read", 42, "Write"]}}`,
			checkResult: func(t *testing.T, d *Document) {
				assert.Equal(t, []string{"Read", "Write"}, d.AllowList())
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "settings.json")
			if !tt.missing {
				path = testutil.WriteFile(t, dir, "settings.json", tt.content)
			}

			d, err := LoadFile(path)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "settings.json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, d.Path())
			if tt.checkResult != nil {
				tt.checkResult(t, d)
			}
		})
	}
}

func TestExtraSettings(t *testing.T) {
	t.Parallel()

	d := mustDoc(t, `{
		"permissions": {"allow": ["Read"]},
		"model": "opus",
		"sandbox": {"enabled": true}
	}`)

	extra := d.ExtraSettings()
	assert.Equal(t, "opus", extra["model"])
	assert.Contains(t, extra, "sandbox")
	assert.NotContains(t, extra, PermissionsKey)
}
