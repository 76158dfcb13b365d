package response

import "cinema-tickets/internal/data/entity"

type PurchaseResponse struct {
	PurchaseID string `json:"purchase_id"`
	AccountID  int64  `json:"account_id"`
	TotalCost  int    `json:"total_cost"`
	TotalSeats int    `json:"total_seats"`
}

func PurchaseToResponse(purchaseID string, accountID entity.AccountID, outcome *entity.PurchaseOutcome) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID: purchaseID,
		AccountID:  int64(accountID),
		TotalCost:  outcome.TotalCost,
		TotalSeats: outcome.TotalSeats,
	}
}
