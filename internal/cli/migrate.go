package cli

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Products table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Database.Driver == config.DriverMemory {
				return errors.New("migrate needs a SQL driver")
			}
			database, dialect, err := a.connect()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := repo.CreateSchema(cmd.Context(), database, dialect); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Products table ready (%s)\n", dialect.Name)
			return nil
		},
	}
}
