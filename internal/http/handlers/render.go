package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageLink struct {
	Label   string
	URL     string
	Current bool
}

type pageData struct {
	SearchText string
	Status     string
	Failed     bool
	Rows       []models.Product
	Pages      []pageLink
}

func parseTemplates() (*template.Template, error) {
	funcs := sprig.FuncMap()
	funcs["money"] = func(d decimal.Decimal) string {
		f, _ := d.Float64()
		return humanize.FormatFloat("#,###.##", f)
	}
	funcs["comma"] = func(n int) string {
		return humanize.Comma(int64(n))
	}

	t, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

// pageLinks builds one pager link per page, each replaying the current
// search with the page action.
func pageLinks(v *catalog.View) []pageLink {
	count := v.PageCount()
	if count <= 1 {
		return nil
	}
	links := make([]pageLink, count)
	for i := range links {
		q := url.Values{}
		q.Set("action", string(catalog.ActionPage))
		q.Set("page", strconv.Itoa(i))
		if v.SearchText != "" {
			q.Set("search", v.SearchText)
		}
		links[i] = pageLink{
			Label:   strconv.Itoa(i + 1),
			URL:     "/products?" + q.Encode(),
			Current: i == v.CurrentPage(),
		}
	}
	return links
}

func (s *Server) renderPage(w http.ResponseWriter, v *catalog.View) {
	data := pageData{
		SearchText: v.SearchText,
		Status:     v.Status,
		Failed:     v.Err != nil,
		Rows:       v.Page(),
		Pages:      pageLinks(v),
	}

	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "products.html", data); err != nil {
		s.log.WithError(err).Error("failed to render products page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.WithError(err).Warn("failed to write products page")
	}
}
