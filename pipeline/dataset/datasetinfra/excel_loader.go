package datasetinfra

import (
	"bytes"
	"context"
	"errors"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/xuri/excelize/v2"
)

// ExcelLoader implements dataset.Loader for .xlsx tracking exports. The first
// sheet is read with the same header contract as the CSV form.
type ExcelLoader struct {
	reader fsx.FileReader
	path   string
}

// NewExcelLoader creates a loader reading an xlsx export through the given file source
func NewExcelLoader(reader fsx.FileReader, path string) *ExcelLoader {
	return &ExcelLoader{
		reader: reader,
		path:   path,
	}
}

func (l *ExcelLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	data, err := l.reader.ReadFile(ctx, l.path)
	if err != nil {
		if errors.Is(err, fsx.ErrNotExist) {
			return nil, dataset.ErrDatasetNotFound().WithDetail("path", l.path)
		}
		return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataset.New(nil), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path).WithDetail("sheet", sheets[0])
	}
	if len(rows) == 0 {
		return dataset.New(nil), nil
	}

	idx := headerIndex(rows[0])
	records := make([]dataset.Candidate, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row, idx))
	}

	return dataset.New(records), nil
}
