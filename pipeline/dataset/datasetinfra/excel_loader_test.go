package datasetinfra

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/insightshub/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, dir, name string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func Test_ExcelLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeXLSX(t, dir, "candidates.xlsx", [][]any{
		{"Candidate", "Role", "Stage", "Source", "Applied_Date", "Last_Updated", "Skills"},
		{"Alice Johnson", "Backend Engineer", "Screening", "LinkedIn", "2024-01-01", "2024-01-20", "Python; SQL"},
		{"Bob Smith", "Data Analyst", "Hired", "Referral", "bad-date", "", "SQL"},
	})

	loader := NewExcelLoader(fsxlocal.NewLocalFileSystem(dir), "candidates.xlsx")
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	records := ds.Records()
	require.Equal(t, "Alice Johnson", records[0].Name)
	require.Equal(t, dataset.StageScreening, records[0].Stage)
	require.NotNil(t, records[0].AppliedDate)

	// Dirty dates coerce to nil, same as the CSV form
	require.Nil(t, records[1].AppliedDate)
	require.Nil(t, records[1].LastUpdated)
}

func Test_ExcelLoader_MissingFile(t *testing.T) {
	loader := NewExcelLoader(fsxlocal.NewLocalFileSystem(t.TempDir()), "missing.xlsx")

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}
