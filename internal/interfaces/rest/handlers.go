// Package rest exposes the submission pipeline over HTTP. The layer stays
// thin: decode, call the service, map the outcome to a status code.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cardstream/payment-gateway/internal/application/services"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	submitService *services.SubmitService
	queryService  *services.QueryService
	logger        *slog.Logger
}

func NewHandlers(
	submitService *services.SubmitService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		submitService: submitService,
		queryService:  queryService,
		logger:        logger,
	}
}

// Routes mounts the payment endpoints on a chi router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/payments", h.SubmitPayment)
	r.Get("/api/payments/{id}", h.GetPayment)
	return r
}

type submitPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Cvv         string `json:"cvv"`
	Amount      int64  `json:"amount"`
}

type rejectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitPayment runs one submission through the pipeline. Accepted maps to
// 201 with the stored record, rejected to 400 with the rejection message,
// processing failures to the error mapper.
func (h *Handlers) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req submitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, rejectionResponse{
			Success: false,
			Message: "Request body must be valid JSON.",
		})
		return
	}

	cmd := services.SubmitPaymentCommand{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		CVV:         req.Cvv,
		Amount:      req.Amount,
	}

	result, err := h.submitService.Submit(r.Context(), cmd)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	if !result.Accepted {
		writeJSON(w, http.StatusBadRequest, rejectionResponse{
			Success: false,
			Message: result.Rejection,
		})
		return
	}

	w.Header().Set("Location", "/api/payments/"+result.Payment.ID)
	writeJSON(w, http.StatusCreated, result.Payment)
}

// GetPayment looks up a stored payment record by ID.
func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payment, err := h.queryService.GetPayment(id)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}
