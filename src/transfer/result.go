package transfer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"signal-sticker-tool/src/signalapi"
)

// ResultFileName records the remote id/key after a successful upload
// or download. Its presence in a pack directory is the sentinel that
// blocks accidental re-upload.
const ResultFileName = "uploaded.yaml"

type resultDoc struct {
	ID  string `yaml:"id"`
	Key string `yaml:"key"`
}

// LoadResult reads the result file from dir. The second return value
// reports whether the file exists.
func LoadResult(dir string) (signalapi.PackRef, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, ResultFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return signalapi.PackRef{}, false, nil
		}
		return signalapi.PackRef{}, false, fmt.Errorf("read result file: %w", err)
	}
	var doc resultDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return signalapi.PackRef{}, false, fmt.Errorf("parse result file: %w", err)
	}
	return signalapi.PackRef{ID: doc.ID, Key: doc.Key}, true, nil
}

// writeResult persists ref exclusively; an existing result file is
// never overwritten.
func writeResult(dir string, ref signalapi.PackRef) error {
	data, err := yaml.Marshal(resultDoc{ID: ref.ID, Key: ref.Key})
	if err != nil {
		return fmt.Errorf("encode result file: %w", err)
	}
	path := filepath.Join(dir, ResultFileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	return f.Close()
}
