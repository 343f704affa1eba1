package main

import (
	"os"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Astemirdum/library-engine/library/app"
	"github.com/Astemirdum/library-engine/library/config"
	"github.com/Astemirdum/library-engine/pkg/logger"
)

func withCore(cmd *cobra.Command, cfg *config.Config, fn func(core *app.Core) error) error {
	log := logger.NewLogger(cfg.Log, "library-cli")
	defer log.Sync() //nolint:errcheck

	core, err := app.NewCore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()
	return fn(core)
}

func newReloadCatalogCmd(loadConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reload-catalog <file.csv>",
		Short: "Replace the book catalog with the rows of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return withCore(cmd, loadConfig(), func(core *app.Core) error {
				res, err := core.ReloadCatalog(cmd.Context(), f)
				if err != nil {
					return err
				}
				cmd.Printf("loaded %d books, skipped %d rows\n", res.Loaded, res.Skipped)
				return nil
			})
		},
	}
}

func newRegisterStaffCmd(loadConfig func() *config.Config) *cobra.Command {
	var id, name string
	cmd := &cobra.Command{
		Use:   "register-staff",
		Short: "Create a staff account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd, "Password: ")
			if err != nil {
				return errors.Wrap(err, "read password")
			}
			if password == "" {
				return errors.New("password must not be empty")
			}

			return withCore(cmd, loadConfig(), func(core *app.Core) error {
				if err := core.RegisterStaff(cmd.Context(), id, name, password); err != nil {
					return err
				}
				cmd.Printf("staff %s registered\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "employee id")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	cmd.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}
