// Package content implements the JSON document stores backing the
// photo gallery, the relationship timeline and the site configuration.
// Each store guards its document with a mutex so concurrent admin
// requests in one process cannot lose updates; writes are plain
// overwrites with no cross-process locking.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func readDocument(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return true, nil
}

func writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// sanitizeFilename keeps uploads to a safe flat-file name: whitespace
// collapses to dashes and path separators are stripped.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	fields := strings.Fields(name)
	name = strings.Join(fields, "-")
	name = strings.ReplaceAll(name, string(filepath.Separator), "")
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}

// removeFileIfExists deletes a file and treats "already gone" as success.
func removeFileIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
