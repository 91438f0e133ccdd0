package bottleneck

import (
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// DetectResponse lists the stalled candidates for a threshold
type DetectResponse struct {
	DaysThreshold int                 `json:"days_threshold"`
	Items         []dataset.Candidate `json:"items"`
	Total         int                 `json:"total"`
}

// SendAlertsRequest asks for a (simulated) alert dispatch
type SendAlertsRequest struct {
	DaysThreshold int            `json:"days_threshold"`
	Recipients    []kernel.Email `json:"recipients"`
}

// AlertResponse reports the outcome of a dispatch
type AlertResponse struct {
	Status     string `json:"status"`
	Alerts     int    `json:"alerts"`
	Recipients int    `json:"recipients"`
}
