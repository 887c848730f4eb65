package catalog

import "github.com/rogerio-castellano/product-catalog/internal/models"

// View is the display surface of the catalog page: the search box, the
// paged grid and the status label.
type View struct {
	SearchText string
	PageIndex  int
	PageSize   int

	// Rows is the grid's data source, i.e. the last successfully loaded
	// result set.
	Rows   []models.Product
	Status string
	// Err holds the failure of the last reload, nil after a success.
	Err    error
	Loaded bool
}

func NewView(pageSize int) *View {
	return &View{PageSize: pageSize}
}

func (v *View) pager() Pager {
	return Pager{Size: v.PageSize}
}

// Page returns the rows of the current page.
func (v *View) Page() []models.Product {
	return v.pager().Page(v.Rows, v.PageIndex)
}

// CurrentPage is the index of the page Page returns, i.e. PageIndex
// clamped to the bound rows.
func (v *View) CurrentPage() int {
	return v.pager().Clamp(len(v.Rows), v.PageIndex)
}

func (v *View) PageCount() int {
	return v.pager().PageCount(len(v.Rows))
}
