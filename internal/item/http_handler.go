package item

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentalapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /items
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), Query{})
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	if items == nil {
		items = []Item{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

// Search handles GET /items/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := Query{
		Name:     query.Get("name"),
		Category: query.Get("category"),
	}

	if minRent := query.Get("minRent"); minRent != "" {
		val, err := strconv.ParseInt(minRent, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "minRent must be a number")
			return
		}
		params.MinRent = &val
	}

	if maxRent := query.Get("maxRent"); maxRent != "" {
		val, err := strconv.ParseInt(maxRent, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "maxRent must be a number")
			return
		}
		params.MaxRent = &val
	}

	items, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	if items == nil {
		items = []Item{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

type createItemRequest struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category" validate:"required"`
	RentPerDay int64  `json:"rentPerDay" validate:"required,gt=0"`
}

// Create handles POST /items
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := httpx.ValidateStruct(req); msg != "" {
		httpx.Error(w, http.StatusBadRequest, msg)
		return
	}

	it := Item{
		Name:       req.Name,
		Category:   req.Category,
		RentPerDay: req.RentPerDay,
	}
	if err := h.service.Create(r.Context(), &it); err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, it)
}
