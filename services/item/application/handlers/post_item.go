package handlers

import (
	"net/http"

	"github.com/ghuser/itemcatalog/pkg/errhttp"
	"github.com/ghuser/itemcatalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemcatalog/pkg/validator"
	appsvcs "github.com/ghuser/itemcatalog/services/item/application/services"
)

// CreateItemRequest is the request body for POST /item.
// Pointers distinguish a missing field from an explicit zero.
type CreateItemRequest struct {
	SellerID   *int64                   `json:"sellerID"   validate:"required,gte=111111,lte=999999" example:"300000"`
	Name       *string                  `json:"name"       validate:"required,min=1,max=255"         example:"Road bike"`
	Price      *int64                   `json:"price"      validate:"required,gte=0"                 example:"1000"`
	Statistics *CreateStatisticsRequest `json:"statistics"`
} // @name CreateItemRequest

// CreateStatisticsRequest is the optional initial statistics of a new item.
type CreateStatisticsRequest struct {
	Likes     int64 `json:"likes"     validate:"gte=0" example:"0"`
	ViewCount int64 `json:"viewCount" validate:"gte=0" example:"0"`
	Contacts  int64 `json:"contacts"  validate:"gte=0" example:"0"`
} // @name CreateStatisticsRequest

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, errs *errhttp.Responder) *PostItemHandler {
	return &PostItemHandler{svc: svc, errs: errs}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a classified-ad item. Statistics are optional and default to zero.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.CreateItemInput{
		SellerID: *req.SellerID,
		Name:     *req.Name,
		Price:    *req.Price,
	}
	if req.Statistics != nil {
		in.Statistics = &appsvcs.StatisticsInput{
			Likes:     req.Statistics.Likes,
			ViewCount: req.Statistics.ViewCount,
			Contacts:  req.Statistics.Contacts,
		}
	}

	item, err := h.svc.Item.Create(r.Context(), in)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
