package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *logrus.Logger
	out    io.Writer
	logOut io.Writer
}

func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), out: os.Stdout, logOut: os.Stderr}
	var configFile string

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog with search and paging",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.load(configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./catalog.yaml)")
	flags.String("driver", "", "Database driver: mysql, postgres, sqlite3 or memory")
	flags.String("dsn", "", "Database connection string")
	flags.String("log-level", "", "Log level")
	flags.String("addr", "", "HTTP listen address")

	a.v.BindPFlag("database.driver", flags.Lookup("driver"))
	a.v.BindPFlag("database.dsn", flags.Lookup("dsn"))
	a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	a.v.BindPFlag("http.addr", flags.Lookup("addr"))

	root.AddCommand(newServeCommand(a), newMigrateCommand(a), newCountCommand(a))
	return root
}

func (a *app) load(configFile string) error {
	if err := config.ReadFile(a.v, configFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := logging.New(cfg.Log, a.logOut)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
