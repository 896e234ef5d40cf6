package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemcatalog/pkg/app"
	"github.com/ghuser/itemcatalog/pkg/errhttp"
	"github.com/ghuser/itemcatalog/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemcatalog/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// Mount it under the API version prefix, e.g. r.Route("/api/1", ...).
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	errs := errhttp.NewResponder(a.IsProduction(), a.Logger)

	getItem := handlers.NewGetItemHandler(svcs, errs).Execute
	getStatistic := handlers.NewGetStatisticHandler(svcs, errs).Execute

	r.Route("/item", func(r chi.Router) {
		r.Post("/", handlers.NewPostItemHandler(svcs, errs).Execute)
		// An empty id is a malformed request, not a missing route.
		r.Get("/", getItem)
		r.Get("/{id}", getItem)
	})
	r.Route("/statistic", func(r chi.Router) {
		r.Get("/", getStatistic)
		r.Get("/{id}", getStatistic)
	})
	r.Get("/{sellerID}/item", handlers.NewListSellerItemsHandler(svcs, errs).Execute)
}
