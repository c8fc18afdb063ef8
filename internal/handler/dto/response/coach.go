package response

import (
	"time"

	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeRangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	CoachID uuid.UUID           `json:"coachId"`
	Start   time.Time           `json:"start"`
	End     time.Time           `json:"end"`
	Free    bool                `json:"free"`
	Busy    []TimeRangeResponse `json:"busy"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	busy := make([]TimeRangeResponse, len(v.Busy))
	for i, r := range v.Busy {
		busy[i] = TimeRangeResponse{Start: r.Start, End: r.End}
	}
	return &AvailabilityResponse{
		CoachID: v.CoachID,
		Start:   v.Start,
		End:     v.End,
		Free:    v.Free,
		Busy:    busy,
	}
}

type PaymentStatusResponse struct {
	PaymentEnabled bool `json:"paymentEnabled"`
	Changed        bool `json:"changed"`
}

func FromRefreshPaymentStatusResult(r *commands.RefreshPaymentStatusResult) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		PaymentEnabled: r.PaymentEnabled,
		Changed:        r.Changed,
	}
}
