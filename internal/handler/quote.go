package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Natim/payment-plan-generator/internal/domain"
	"github.com/Natim/payment-plan-generator/internal/service"
	"github.com/Natim/payment-plan-generator/pkg/response"

	"github.com/go-playground/validator/v10"
)

type QuoteHandler struct {
	service   *service.QuoteService
	validator *validator.Validate
}

func NewQuoteHandler(service *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateAmortizedQuote handles POST /api/v1/quotes/amortized
func (h *QuoteHandler) CreateAmortizedQuote(w http.ResponseWriter, r *http.Request) {
	var request domain.AmortizedQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "invalid quote request", err)
		return
	}

	quote, err := h.service.QuoteAmortized(r.Context(), &request)
	if err != nil {
		response.BadRequest(w, "could not build amortized quote", err)
		return
	}

	response.Created(w, quote)
}

// CreateFlatQuote handles POST /api/v1/quotes/flat
func (h *QuoteHandler) CreateFlatQuote(w http.ResponseWriter, r *http.Request) {
	var request domain.FlatQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "invalid quote request", err)
		return
	}

	quote, err := h.service.QuoteFlat(r.Context(), &request)
	if err != nil {
		response.BadRequest(w, "could not build flat quote", err)
		return
	}

	response.Created(w, quote)
}

// CheckRateCap handles POST /api/v1/quotes/rate-cap
func (h *QuoteHandler) CheckRateCap(w http.ResponseWriter, r *http.Request) {
	var request domain.RateCapRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "invalid rate-cap request", err)
		return
	}

	result, err := h.service.CheckRateCap(r.Context(), &request)
	if err != nil {
		response.InternalServerError(w, "could not evaluate rate cap", err)
		return
	}

	response.Success(w, result)
}
