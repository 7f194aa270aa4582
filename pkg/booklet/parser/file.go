package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
)

// ReadFile reads a local export into a Table. Files ending in .xlsx are
// read as workbooks (first sheet); everything else is parsed as CSV.
func ReadFile(path string, nulls NullSet) (*models.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadWorkbook(path, "", nulls)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCSV(f, nulls)
}
