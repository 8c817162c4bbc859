package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// WriteFile renders a document in memory and replaces name with it only
// once rendering succeeded, so a failed run leaves an existing file as it
// was.
func WriteFile(name string, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
