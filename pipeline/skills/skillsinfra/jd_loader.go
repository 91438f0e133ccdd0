package skillsinfra

import (
	"context"
	"errors"
	"strings"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/skills"
	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

// FileJDSource implements skills.JDSource over a text or PDF file. A missing
// or unconfigured file yields an empty job description.
type FileJDSource struct {
	reader fsx.FileReader
	path   string
}

// NewFileJDSource creates a job-description source for the given path.
// An empty path means no pre-seeded description.
func NewFileJDSource(reader fsx.FileReader, path string) *FileJDSource {
	return &FileJDSource{
		reader: reader,
		path:   path,
	}
}

func (s *FileJDSource) Read(ctx context.Context) (kernel.JobDescription, error) {
	if s.path == "" {
		return "", nil
	}

	data, err := s.reader.ReadFile(ctx, s.path)
	if err != nil {
		if errors.Is(err, fsx.ErrNotExist) {
			return "", nil
		}
		return "", skills.ErrJDReadFailed(err).WithDetail("path", s.path)
	}

	if strings.HasSuffix(strings.ToLower(s.path), ".pdf") {
		text, err := extractPDFText(data)
		if err != nil {
			return "", skills.ErrJDReadFailed(err).WithDetail("path", s.path)
		}
		return kernel.JobDescription(text), nil
	}

	return kernel.JobDescription(data), nil
}

// extractPDFText concatenates the text of every page
func extractPDFText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
