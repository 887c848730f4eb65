package handlers

import (
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// PageRequest carries the display surface state of one interaction.
type PageRequest struct {
	Search string `schema:"search"`
	Page   int    `schema:"page"`
	Action string `schema:"action"`
}

type ProductResponse struct {
	Id          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Supplier    string          `json:"supplier"`
	CreatedDate string          `json:"created_date,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
	PageIndex  int `json:"page_index"`
	PageCount  int `json:"page_count"`
	PageSize   int `json:"page_size"`
}

type ProductsSearchResult struct {
	Data   []ProductResponse `json:"data"`
	Meta   Meta              `json:"meta"`
	Status string            `json:"status"`
	Search string            `json:"search"`
}

type CountResult struct {
	Count int `json:"count"`
}

type ErrorResult struct {
	Error string `json:"error"`
}

func toProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		Supplier: p.Supplier,
	}
	if !p.CreatedDate.IsZero() {
		resp.CreatedDate = p.CreatedDate.Format(time.RFC3339)
	}
	return resp
}
