package handlers

import (
	"time"

	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

// StatisticsResponse is the engagement counter block of an item.
type StatisticsResponse struct {
	Likes     int64 `json:"likes"     example:"12"`
	ViewCount int64 `json:"viewCount" example:"340"`
	Contacts  int64 `json:"contacts"  example:"3"`
} // @name StatisticsResponse

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID         string             `json:"id"         example:"5f0c7a36-3c0e-4f39-9f63-1f0e6a1d2b7c"`
	SellerID   int64              `json:"sellerId"   example:"300000"`
	Name       string             `json:"name"       example:"Road bike"`
	Price      int64              `json:"price"      example:"1000"`
	Statistics StatisticsResponse `json:"statistics"`
	CreatedAt  time.Time          `json:"createdAt"  example:"2026-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error  string            `json:"error" example:"invalid input: invalid seller id"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

func toStatisticsResponse(s models.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Likes:     s.Likes,
		ViewCount: s.ViewCount,
		Contacts:  s.Contacts,
	}
}

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID.String(),
		SellerID:   item.SellerID.Int64(),
		Name:       item.Name.String(),
		Price:      item.Price.Int64(),
		Statistics: toStatisticsResponse(item.Statistics),
		CreatedAt:  item.CreatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
