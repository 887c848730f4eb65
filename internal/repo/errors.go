package repo

import "errors"

const (
	opGetProducts     = "get_products"
	opGetProductCount = "get_product_count"
)

// StorageError is returned for any failure reaching or querying the
// product store: connection, query execution, scanning or iteration.
type StorageError struct {
	Op  string
	Err error
}

// Error returns the message of the underlying failure unchanged.
func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Op + ": storage failure"
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
