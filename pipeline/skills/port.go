package skills

import (
	"context"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
)

// JDSource supplies the pre-seeded job description text. An absent source
// yields an empty description, not an error.
type JDSource interface {
	Read(ctx context.Context) (kernel.JobDescription, error)
}
