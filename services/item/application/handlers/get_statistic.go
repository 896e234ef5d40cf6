package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemcatalog/pkg/errhttp"
	"github.com/ghuser/itemcatalog/pkg/httpx"
	appsvcs "github.com/ghuser/itemcatalog/services/item/application/services"
)

// GetStatisticHandler handles GET /statistic/{id} requests.
type GetStatisticHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewGetStatisticHandler returns a GetStatisticHandler backed by the given services.
func NewGetStatisticHandler(svc *appsvcs.Services, errs *errhttp.Responder) *GetStatisticHandler {
	return &GetStatisticHandler{svc: svc, errs: errs}
}

// Execute returns the engagement counters of an item.
//
//	@Summary		Get item statistics
//	@Tags			statistics
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	StatisticsResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/statistic/{id} [get]
func (h *GetStatisticHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Item.GetStatistics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toStatisticsResponse(stats))
}
