package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/product-catalog/internal/cli"
)

// @title Product Catalog API
// @version 1.0
// @description Product listing with free-text search and paging.
// @host localhost:8080
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
