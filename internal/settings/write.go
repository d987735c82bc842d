package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes the serialized document to path using an atomic
// write (temp file + rename). When backup is set and the destination
// already exists, its current contents are copied aside first; the
// path of the created backup is returned so callers can report it.
func WriteFile(path string, data []byte, backup bool) (backupPath string, err error) {
	if backup {
		backupPath, err = backupExisting(path)
		if err != nil {
			return "", fmt.Errorf("%w %s: %v", ErrUnwritableOutput, path, err)
		}
	}

	if err := atomicWrite(path, data); err != nil {
		return backupPath, fmt.Errorf("%w %s: %v", ErrUnwritableOutput, path, err)
	}
	return backupPath, nil
}

// backupExisting copies path to the first free name in the sequence
// <path>.bak, <path>.bak.1, <path>.bak.2, ... Returns "" when path
// does not exist yet.
func backupExisting(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	candidate := path + ".bak"
	for idx := 1; fileExists(candidate); idx++ {
		candidate = fmt.Sprintf("%s.bak.%d", path, idx)
	}

	if err := os.WriteFile(candidate, data, 0644); err != nil {
		return "", err
	}
	return candidate, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	tmpPath = ""
	return nil
}
