package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Astemirdum/library-engine/library/app"
	"github.com/Astemirdum/library-engine/library/config"
	"github.com/Astemirdum/library-engine/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var sqlitePath string
	loadConfig := func() *config.Config {
		opts := []config.Option{config.WithWriteTimeout(time.Minute)}
		if sqlitePath != "" {
			opts = append(opts, config.WithDatabase(database.DriverSQLite, sqlitePath))
		}
		return config.NewConfig(opts...)
	}

	root := &cobra.Command{
		Use:          "library",
		Short:        "Library catalog, accounts and loans",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "use the sqlite file at this path instead of DB_DRIVER settings")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.Run(loadConfig())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.Migrate(cmd.Context(), loadConfig()); err != nil {
					return err
				}
				cmd.Println("migrations applied")
				return nil
			},
		},
		newReloadCatalogCmd(loadConfig),
		newRegisterStaffCmd(loadConfig),
	)
	return root
}
