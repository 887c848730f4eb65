package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductGateway.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int64
	failure  error
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Supplier), term)
}

// GetProducts implements ProductGateway.
func (r *InMemoryProductRepository) GetProducts(ctx context.Context, searchTerm string) (ResultSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failure != nil {
		return ResultSet{}, storageError(opGetProducts, r.failure)
	}

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesSearch(p, searchTerm) {
			filtered = append(filtered, p)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	return ResultSet{Rows: filtered}, nil
}

// GetProductCount implements ProductGateway.
func (r *InMemoryProductRepository) GetProductCount(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failure != nil {
		return 0, storageError(opGetProductCount, r.failure)
	}
	return len(r.products), nil
}

// Seed adds products to the repository. Products without an ID get the
// next free one.
func (r *InMemoryProductRepository) Seed(products ...models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products = append(r.products, p)
	}
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// FailWith makes every following call return err wrapped in a
// StorageError. A nil err restores normal operation.
func (r *InMemoryProductRepository) FailWith(err error) {
	r.mu.Lock()
	r.failure = err
	r.mu.Unlock()
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	r.products = []models.Product{}
	r.nextID = 1
	r.mu.Unlock()
}
