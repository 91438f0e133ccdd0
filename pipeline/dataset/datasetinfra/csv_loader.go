package datasetinfra

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// CSVLoader implements dataset.Loader for delimited row-oriented exports
type CSVLoader struct {
	reader fsx.FileReader
	path   string
}

// NewCSVLoader creates a loader reading a CSV export through the given file source
func NewCSVLoader(reader fsx.FileReader, path string) *CSVLoader {
	return &CSVLoader{
		reader: reader,
		path:   path,
	}
}

func (l *CSVLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	data, err := l.reader.ReadFile(ctx, l.path)
	if err != nil {
		if errors.Is(err, fsx.ErrNotExist) {
			return nil, dataset.ErrDatasetNotFound().WithDetail("path", l.path)
		}
		return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // dirty exports have ragged rows
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return dataset.New(nil), nil
		}
		return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path)
	}
	idx := headerIndex(header)

	records := make([]dataset.Candidate, 0)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dataset.ErrLoadFailed(err).WithDetail("path", l.path)
		}
		records = append(records, recordFromRow(row, idx))
	}

	return dataset.New(records), nil
}
