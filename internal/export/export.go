// Package export writes advisory results to files, gzip-compressed when the
// destination name asks for it.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteJSON marshals v as indented JSON and writes it to path. A path ending
// in .gz is gzip-compressed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	data = append(data, '\n')

	if !strings.HasSuffix(path, ".gz") {
		return os.WriteFile(path, data, 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		zw.Close() //nolint:errcheck
		f.Close()  //nolint:errcheck
		return fmt.Errorf("writing compressed output: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("flushing compressed output: %w", err)
	}
	return f.Close()
}
