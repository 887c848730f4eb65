package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
)

// dispatch rebuilds the display surface from the request and applies the
// requested interaction to it.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) (*catalog.View, bool) {
	req, err := s.decodePageRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	v := catalog.NewView(s.pageSize)
	v.SearchText = req.Search
	v.PageIndex = req.Page

	ev := catalog.Event{Action: catalog.Action(req.Action), PageIndex: req.Page}
	if err := s.controller.Dispatch(r.Context(), v, ev); err != nil {
		if errors.Is(err, catalog.ErrUnknownAction) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		http.Error(w, "could not load products", http.StatusInternalServerError)
		return nil, false
	}
	return v, true
}

// ProductsPageHandler godoc
// @Summary Product catalog page
// @Tags products
// @Produce html
// @Param search query string false "Search text"
// @Param page query int false "Requested page index"
// @Param action query string false "search, showall or page"
// @Success 200 {string} string "HTML page"
// @Failure 400 {string} string "Invalid query"
// @Router /products [get]
func (s *Server) ProductsPageHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := s.dispatch(w, r)
	if !ok {
		return
	}
	s.renderPage(w, v)
}

// ProductsAPIHandler godoc
// @Summary Search and paginate products
// @Tags products
// @Produce json
// @Param search query string false "Search text"
// @Param page query int false "Requested page index"
// @Param action query string false "search, showall or page"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {object} ProductsSearchResult
// @Router /api/products [get]
func (s *Server) ProductsAPIHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := s.dispatch(w, r)
	if !ok {
		return
	}

	page := v.Page()
	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(page)),
		Meta: Meta{
			TotalCount: len(v.Rows),
			PageIndex:  v.CurrentPage(),
			PageCount:  v.PageCount(),
			PageSize:   v.PageSize,
		},
		Status: v.Status,
		Search: v.SearchText,
	}
	for i, p := range page {
		resp.Data[i] = toProductResponse(p)
	}

	status := http.StatusOK
	if v.Err != nil {
		status = http.StatusInternalServerError
	}
	s.respondJSON(w, status, resp)
}

// ProductCountHandler godoc
// @Summary Total number of products
// @Tags products
// @Produce json
// @Success 200 {object} CountResult
// @Failure 500 {object} ErrorResult
// @Router /api/products/count [get]
func (s *Server) ProductCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.gateway.GetProductCount(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("could not count products")
		s.respondJSON(w, http.StatusInternalServerError, ErrorResult{Error: err.Error()})
		return
	}
	s.respondJSON(w, http.StatusOK, CountResult{Count: count})
}
