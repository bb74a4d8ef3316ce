package patron

import (
	"encoding/json"
	"net/http"

	"rentalapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /patrons
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

// Search handles GET /patrons/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("name"))
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request, name string) {
	patrons, err := h.service.List(r.Context(), name)
	if err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	if patrons == nil {
		patrons = []Patron{}
	}
	httpx.JSON(w, http.StatusOK, patrons)
}

type createPatronRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Create handles POST /patrons
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPatronRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := httpx.ValidateStruct(req); msg != "" {
		httpx.Error(w, http.StatusBadRequest, msg)
		return
	}

	p := Patron{Name: req.Name, Email: req.Email}
	if err := h.service.Create(r.Context(), &p); err != nil {
		httpx.InternalError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}
