package bottleneckinfra

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// SimulatedSender implements bottleneck.AlertSender without touching the
// network: it logs what would have been sent and reports a status string.
type SimulatedSender struct{}

// NewSimulatedSender creates a simulated alert sender
func NewSimulatedSender() *SimulatedSender {
	return &SimulatedSender{}
}

func (s *SimulatedSender) Send(ctx context.Context, stalled []dataset.Candidate, recipients []kernel.Email) (string, error) {
	if len(stalled) == 0 {
		return "No alerts sent: no bottlenecks detected.", nil
	}
	if len(recipients) == 0 {
		return "No alerts sent: no recipients configured.", nil
	}

	addrs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		addrs = append(addrs, r.String())
	}
	joined := strings.Join(addrs, ", ")

	for _, c := range stalled {
		logx.Debugf("Simulated alert for %s (%s, stage %s)", c.Name, c.Role, c.Stage)
	}
	logx.Infof("Simulated dispatch of %d bottleneck alert(s) to %s", len(stalled), joined)

	return fmt.Sprintf("Simulated: sent %d bottleneck alert(s) to: %s", len(stalled), joined), nil
}
