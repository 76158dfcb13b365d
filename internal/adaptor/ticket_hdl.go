package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	purchase, err := h.service.Purchase(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "purchase tickets")
		return
	}

	utils.ResponseCreated(w, "success", purchase)
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	if reason, ok := entity.ReasonOf(err); ok {
		h.log.Debug(operation+" rejected",
			zap.String("reason", string(reason)),
			zap.String("request_id", requestID))
		utils.ResponseBadRequest(w, reason.Message(), map[string]string{"reason": string(reason)})
		return
	}

	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", requestID))
	utils.ResponseInternalError(w, "Internal server error")
}
