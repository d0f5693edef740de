package paystub

import (
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

type PaystubResponse struct {
	ID         int64           `json:"id"`
	AgentID    int             `json:"agent_id"`
	AgentName  string          `json:"agent_name"`
	VendorID   int             `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  string          `json:"issue_date"`
	WeekEnding string          `json:"week_ending"`
}

func MapResponse(p Paystub) PaystubResponse {
	return PaystubResponse{
		ID:         p.ID,
		AgentID:    p.AgentID,
		AgentName:  p.AgentName,
		VendorID:   p.VendorID,
		VendorName: p.VendorName,
		Amount:     p.Amount,
		IssueDate:  dates.Format(p.IssueDate),
		WeekEnding: dates.Format(p.WeekEnding),
	}
}

func MapResponses(stubs []Paystub) []PaystubResponse {
	result := make([]PaystubResponse, 0, len(stubs))
	for _, p := range stubs {
		result = append(result, MapResponse(p))
	}
	return result
}
