package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the total number of products",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeStore, err := a.openGateway()
			if err != nil {
				return err
			}
			defer closeStore()

			count, err := gateway.GetProductCount(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not count products: %w", err)
			}
			fmt.Fprintln(a.out, count)
			return nil
		},
	}
}
