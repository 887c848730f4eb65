package handlers

import (
	"html/template"

	"github.com/gorilla/schema"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/sirupsen/logrus"
)

// Server holds the collaborators shared by every handler.
type Server struct {
	gateway     repo.ProductGateway
	controller  *catalog.Controller
	metricsRepo repo.MetricsRepository
	pageSize    int

	decoder *schema.Decoder
	pages   *template.Template
	log     logrus.FieldLogger
}

func NewServer(gateway repo.ProductGateway, pageSize int, log logrus.FieldLogger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		gateway:     gateway,
		controller:  catalog.NewController(gateway, log),
		metricsRepo: repo.NewGatewayMetricsRepository(gateway),
		pageSize:    pageSize,
		decoder:     decoder,
		pages:       pages,
		log:         log,
	}, nil
}
