package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemcatalog/pkg/errhttp"
	"github.com/ghuser/itemcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/itemcatalog/services/item/application/services"
)

// GetItemHandler handles GET /item/{id} requests.
type GetItemHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, errs *errhttp.Responder) *GetItemHandler {
	return &GetItemHandler{svc: svc, errs: errs}
}

// Execute returns a single item.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/item/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Item.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
