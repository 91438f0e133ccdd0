package bottleneck

import (
	"context"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// AlertSender dispatches stalled-candidate alerts. Implementations return a
// human-readable status; empty inputs are no-ops with an informative status,
// never errors.
type AlertSender interface {
	Send(ctx context.Context, stalled []dataset.Candidate, recipients []kernel.Email) (string, error)
}
