package repo

import (
	"context"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductGateway defines the read operations the catalog page runs
// against the Products table.
type ProductGateway interface {
	// GetProducts returns every product when searchTerm is empty, otherwise
	// the products whose name, category or supplier contains searchTerm,
	// ignoring case. Rows are ordered by ProductID.
	GetProducts(ctx context.Context, searchTerm string) (ResultSet, error)
	// GetProductCount returns the unfiltered number of rows in Products.
	GetProductCount(ctx context.Context) (int, error)
}

// ResultSet holds the rows produced by one GetProducts call.
type ResultSet struct {
	Rows []models.Product
}

// Count is the number of rows in the result set.
func (rs ResultSet) Count() int {
	return len(rs.Rows)
}
