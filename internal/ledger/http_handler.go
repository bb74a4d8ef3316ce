package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentalapi/internal/httpx"
	"rentalapi/internal/item"
	"rentalapi/internal/patron"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type issueRequest struct {
	ItemID    string `json:"itemId" validate:"required"`
	PatronID  string `json:"patronId" validate:"required"`
	IssueDate string `json:"issueDate" validate:"required,daydate"`
}

// Issue handles POST /transactions/issue
func (h *HTTPHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := httpx.ValidateStruct(req); msg != "" {
		httpx.Error(w, http.StatusBadRequest, msg)
		return
	}
	issueDate, _ := httpx.ParseDate(req.IssueDate)

	rec, err := h.service.Issue(r.Context(), req.ItemID, req.PatronID, issueDate)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound), errors.Is(err, patron.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Item or patron not found")
		case errors.Is(err, ErrItemAlreadyIssued):
			httpx.Error(w, http.StatusConflict, "Item is already issued")
		default:
			httpx.InternalError(r, w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, rec)
}

type returnRequest struct {
	ItemID     string `json:"itemId" validate:"required"`
	PatronID   string `json:"patronId" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required,daydate"`
}

// Return handles POST /transactions/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := httpx.ValidateStruct(req); msg != "" {
		httpx.Error(w, http.StatusBadRequest, msg)
		return
	}
	returnDate, _ := httpx.ParseDate(req.ReturnDate)

	rec, err := h.service.Return(r.Context(), req.ItemID, req.PatronID, returnDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			httpx.Error(w, http.StatusNotFound, "Transaction not found")
		case errors.Is(err, item.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, ErrInvalidInput):
			httpx.Error(w, http.StatusBadRequest, "Return date must not be earlier than the issue date")
		default:
			httpx.InternalError(r, w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

// ItemHistory handles GET /transactions/item/{itemID}
func (h *HTTPHandler) ItemHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.ItemHistory(r.Context(), r.PathValue("itemID"))
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, history)
}

// RentTotal handles GET /transactions/item/{itemID}/rent-total
func (h *HTTPHandler) RentTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalRent(r.Context(), r.PathValue("itemID"))
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, RentTotal{TotalRent: total})
}

// ItemSummary handles GET /transactions/item/{itemID}/details
func (h *HTTPHandler) ItemSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.ItemSummary(r.Context(), r.PathValue("itemID"))
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// PatronHistory handles GET /transactions/patron/{patronID}
func (h *HTTPHandler) PatronHistory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.PatronHistory(r.Context(), r.PathValue("patronID"))
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// ByDateRange handles GET /transactions/date-range
func (h *HTTPHandler) ByDateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := httpx.ParseDate(query.Get("startDate"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "startDate must be a valid date")
		return
	}
	end, err := httpx.ParseDate(query.Get("endDate"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "endDate must be a valid date")
		return
	}

	recs, err := h.service.ByDateRange(r.Context(), start, end)
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	if recs == nil {
		recs = []LendingRecord{}
	}
	httpx.JSON(w, http.StatusOK, recs)
}

// List handles GET /transactions
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.AllTransactions(r.Context())
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	if recs == nil {
		recs = []LendingRecord{}
	}
	httpx.JSON(w, http.StatusOK, recs)
}
