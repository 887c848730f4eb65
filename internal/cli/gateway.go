package cli

import (
	"database/sql"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

// openGateway builds the product gateway named by the configuration. The
// returned close function releases the store.
func (a *app) openGateway() (repo.ProductGateway, func() error, error) {
	if a.cfg.Database.Driver == config.DriverMemory {
		a.log.Warn("using the in-memory product store with demo data")
		r := repo.NewInMemoryProductRepository()
		r.Seed(demoProducts()...)
		return r, func() error { return nil }, nil
	}

	database, dialect, err := a.connect()
	if err != nil {
		return nil, nil, err
	}
	gateway := repo.NewSQLProductRepository(database, dialect, a.cfg.Database.QueryTimeout, a.log)
	return gateway, database.Close, nil
}

func (a *app) connect() (*sql.DB, repo.Dialect, error) {
	return db.Connect(a.cfg.Database)
}

func demoProducts() []models.Product {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return []models.Product{
		{Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("9.99"), Stock: 10, Supplier: "Acme", CreatedDate: created},
		{Name: "Gadget", Category: "Electronics", Price: decimal.RequireFromString("19.99"), Stock: 5, Supplier: "Acme", CreatedDate: created},
		{Name: "Sprocket", Category: "Hardware", Price: decimal.RequireFromString("2.49"), Stock: 340, Supplier: "Globex", CreatedDate: created.AddDate(0, 1, 0)},
		{Name: "Thingamajig", Category: "Misc", Price: decimal.RequireFromString("149.00"), Stock: 2, Supplier: "Initech", CreatedDate: created.AddDate(0, 2, 0)},
	}
}
