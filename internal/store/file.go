// Collection file read/write helpers with atomic persistence.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// Collection file names under DataDir.
const (
	shopsFile = "shops.json"
	logsFile  = "logs.json"
)

// readCollectionFile reads path and unmarshals it into dst, which must be a
// pointer to a slice of JSON record structs. The second return value
// reports whether the file existed. A file that exists but does not parse
// as the expected JSON array yields ErrCorruptData: corruption must never
// be mistaken for an empty collection.
func readCollectionFile(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("%w: parsing %s: %v", types.ErrCorruptData, filepath.Base(path), err)
	}
	return true, nil
}

// writeCollectionFile atomically replaces the collection file at path with
// the JSON array encoding of records, using the temp-file, fsync, rename
// pattern. Every save is a full overwrite of the collection; there is no
// partial or patch write path.
func writeCollectionFile(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".collection-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
