package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemcatalog/pkg/errhttp"
	"github.com/ghuser/itemcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/itemcatalog/services/item/application/services"
)

// ListSellerItemsHandler handles GET /{sellerID}/item requests.
type ListSellerItemsHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewListSellerItemsHandler returns a ListSellerItemsHandler backed by the given services.
func NewListSellerItemsHandler(svc *appsvcs.Services, errs *errhttp.Responder) *ListSellerItemsHandler {
	return &ListSellerItemsHandler{svc: svc, errs: errs}
}

// Execute lists every item of a seller, oldest first.
//
//	@Summary		List seller items
//	@Description	Returns an empty array when the seller has no items.
//	@Tags			items
//	@Produce		json
//	@Param			sellerID	path		int	true	"Seller ID (111111-999999)"
//	@Success		200			{array}		ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/{sellerID}/item [get]
func (h *ListSellerItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.ListBySeller(r.Context(), chi.URLParam(r, "sellerID"))
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
