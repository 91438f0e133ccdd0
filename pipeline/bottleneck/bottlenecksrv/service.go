package bottlenecksrv

import (
	"context"

	"github.com/Abraxas-365/insightshub/pkg/errx"
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
)

// Service detects stalled candidates and dispatches (simulated) alerts
type Service struct {
	datasets          *datasetsrv.Service
	sender            bottleneck.AlertSender
	defaultRecipients []kernel.Email
}

// NewService creates the bottleneck service. defaultRecipients are used when
// an alert request names none.
func NewService(datasets *datasetsrv.Service, sender bottleneck.AlertSender, defaultRecipients []kernel.Email) *Service {
	return &Service{
		datasets:          datasets,
		sender:            sender,
		defaultRecipients: defaultRecipients,
	}
}

// Detect returns candidates idle in early stages for at least daysThreshold
// days. A non-positive threshold is rejected; zero means "use the default".
func (s *Service) Detect(ctx context.Context, daysThreshold int) ([]dataset.Candidate, error) {
	if daysThreshold == 0 {
		daysThreshold = bottleneck.DefaultDaysThreshold
	}
	if daysThreshold < 1 {
		return nil, bottleneck.ErrInvalidThreshold().WithDetail("days_threshold", daysThreshold)
	}

	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return bottleneck.Detect(ds, daysThreshold), nil
}

// SendAlerts runs detection and hands the result to the alert sender,
// returning the sender's status string
func (s *Service) SendAlerts(ctx context.Context, daysThreshold int, recipients []kernel.Email) (*bottleneck.AlertResponse, error) {
	stalled, err := s.Detect(ctx, daysThreshold)
	if err != nil {
		return nil, err
	}

	if len(recipients) == 0 {
		recipients = s.defaultRecipients
	}
	valid := make([]kernel.Email, 0, len(recipients))
	for _, r := range recipients {
		if !r.IsEmpty() {
			valid = append(valid, r)
		}
	}

	status, err := s.sender.Send(ctx, stalled, valid)
	if err != nil {
		return nil, errx.Wrap(err, "failed to dispatch bottleneck alerts", errx.TypeExternal)
	}

	return &bottleneck.AlertResponse{
		Status:     status,
		Alerts:     len(stalled),
		Recipients: len(valid),
	}, nil
}
