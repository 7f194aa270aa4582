// Package output writes booklet datasets to files and the console.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
)

// EncodeCSV writes the booklet header and rows as comma-delimited text.
func EncodeCSV(w io.Writer, b *models.Booklet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(b.Columns()); err != nil {
		return err
	}
	if err := cw.WriteAll(b.Records()); err != nil {
		return err
	}
	return cw.Error()
}

// WriteCSV writes the booklet to path. The file is written next to path
// first and renamed into place, so a failed write leaves no output file.
func WriteCSV(path string, b *models.Booklet) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := EncodeCSV(f, b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
