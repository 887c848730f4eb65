package catalog

import "github.com/rogerio-castellano/product-catalog/internal/models"

// DefaultPageSize matches the grid's page size when none is configured.
const DefaultPageSize = 10

// Pager splits a bound result set into fixed-size pages.
type Pager struct {
	Size int
}

func (p Pager) size() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

// PageCount is the number of pages needed for total rows. An empty result
// still has one (empty) page.
func (p Pager) PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.size() - 1) / p.size()
}

// Clamp keeps index inside [0, PageCount(total)-1].
func (p Pager) Clamp(total, index int) int {
	if index < 0 {
		return 0
	}
	if last := p.PageCount(total) - 1; index > last {
		return last
	}
	return index
}

// Page returns the rows shown on page index, after clamping.
func (p Pager) Page(rows []models.Product, index int) []models.Product {
	index = p.Clamp(len(rows), index)
	start := index * p.size()
	if start >= len(rows) {
		return []models.Product{}
	}
	end := start + p.size()
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
