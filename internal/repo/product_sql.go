package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultQueryTimeout = 3 * time.Second

// SQLProductRepository runs the catalog queries over database/sql.
type SQLProductRepository struct {
	db      *sql.DB
	dialect Dialect
	timeout time.Duration
	log     logrus.FieldLogger
}

func NewSQLProductRepository(db *sql.DB, dialect Dialect, timeout time.Duration, log logrus.FieldLogger) *SQLProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SQLProductRepository{
		db:      db,
		dialect: dialect,
		timeout: timeout,
		log:     log.WithField("dialect", dialect.Name),
	}
}

func (r *SQLProductRepository) GetProducts(ctx context.Context, searchTerm string) (ResultSet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return ResultSet{}, r.fail(opGetProducts, err)
	}
	defer conn.Close()

	query, args := r.dialect.productsQuery(searchTerm)
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return ResultSet{}, r.fail(opGetProducts, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return ResultSet{}, r.fail(opGetProducts, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return ResultSet{}, r.fail(opGetProducts, err)
	}

	return ResultSet{Rows: products}, nil
}

func (r *SQLProductRepository) GetProductCount(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return 0, r.fail(opGetProductCount, err)
	}
	defer conn.Close()

	var count int
	if err := conn.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return 0, r.fail(opGetProductCount, err)
	}
	return count, nil
}

func (r *SQLProductRepository) fail(op string, err error) error {
	r.log.WithError(err).WithField("op", op).Error("product query failed")
	return storageError(op, err)
}

// scanProduct reads one row, tolerating NULLs in the descriptive columns.
func scanProduct(rows *sql.Rows) (models.Product, error) {
	var (
		p        models.Product
		name     sql.NullString
		category sql.NullString
		price    decimal.NullDecimal
		stock    sql.NullInt64
		supplier sql.NullString
		created  sql.NullTime
	)
	if err := rows.Scan(&p.ID, &name, &category, &price, &stock, &supplier, &created); err != nil {
		return models.Product{}, err
	}

	p.Name = name.String
	p.Category = category.String
	p.Price = price.Decimal
	p.Stock = int(stock.Int64)
	p.Supplier = supplier.String
	p.CreatedDate = created.Time
	return p, nil
}
