package datasetinfra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/insightshub/pkg/errx"
	"github.com/Abraxas-365/insightshub/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func Test_CSVLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "candidates.csv",
		"Candidate,Role,Stage,Source,Applied_Date,Last_Updated,Skills\n"+
			"Alice Johnson,Backend Engineer,Screening,LinkedIn,2024-01-01,2024-01-20,Python; SQL\n"+
			"Bob Smith,Data Analyst,Hired,Referral,2024-01-05,2024-02-04,SQL; Tableau\n")

	loader := NewCSVLoader(fsxlocal.NewLocalFileSystem(dir), "candidates.csv")
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	records := ds.Records()
	require.Equal(t, "Alice Johnson", records[0].Name)
	require.Equal(t, dataset.StageScreening, records[0].Stage)
	require.Equal(t, "LinkedIn", records[0].Source)
	require.NotNil(t, records[0].AppliedDate)
	require.Equal(t, "Python; SQL", records[0].Skills)

	// Source order preserved
	require.Equal(t, "Bob Smith", records[1].Name)
}

func Test_CSVLoader_DirtyDatesCoerceToNil(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "candidates.csv",
		"Candidate,Role,Stage,Source,Applied_Date,Last_Updated,Skills\n"+
			"Alice,Backend Engineer,Applied,LinkedIn,not-a-date,,Python\n")

	loader := NewCSVLoader(fsxlocal.NewLocalFileSystem(dir), "candidates.csv")
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	records := ds.Records()
	require.Len(t, records, 1)
	require.Nil(t, records[0].AppliedDate)
	require.Nil(t, records[0].LastUpdated)
	require.Equal(t, "Alice", records[0].Name)
}

func Test_CSVLoader_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "candidates.csv",
		"Candidate,Role,Stage,Source,Applied_Date,Last_Updated,Skills\n"+
			"Alice,Backend Engineer,Applied\n")

	loader := NewCSVLoader(fsxlocal.NewLocalFileSystem(dir), "candidates.csv")
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	records := ds.Records()
	require.Len(t, records, 1)
	require.Equal(t, "Alice", records[0].Name)
	require.Empty(t, records[0].Source)
	require.Nil(t, records[0].AppliedDate)
}

func Test_CSVLoader_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "candidates.csv",
		"Candidate,Role,Stage,Source,Applied_Date,Last_Updated,Skills\n")

	loader := NewCSVLoader(fsxlocal.NewLocalFileSystem(dir), "candidates.csv")
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ds.IsEmpty())
}

func Test_CSVLoader_MissingFile(t *testing.T) {
	loader := NewCSVLoader(fsxlocal.NewLocalFileSystem(t.TempDir()), "missing.csv")

	_, err := loader.Load(context.Background())
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, "DATASET.NOT_FOUND", e.Code)
}
