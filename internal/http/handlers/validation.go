package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
)

// decodePageRequest reads the search box, page index and action from the
// query string.
func (s *Server) decodePageRequest(r *http.Request) (PageRequest, error) {
	var req PageRequest
	if err := s.decoder.Decode(&req, r.URL.Query()); err != nil {
		return PageRequest{}, fmt.Errorf("invalid query: %w", err)
	}
	if err := validatePageRequest(req); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

func validatePageRequest(req PageRequest) error {
	if req.Page < 0 {
		return errors.New("page must be zero or positive")
	}
	switch catalog.Action(req.Action) {
	case catalog.ActionInit, catalog.ActionSearch, catalog.ActionShowAll, catalog.ActionPage:
		return nil
	}
	return fmt.Errorf("%w: %q", catalog.ErrUnknownAction, req.Action)
}
