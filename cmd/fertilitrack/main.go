package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/fertilitrack/internal/app"
	"github.com/terraincognita07/fertilitrack/internal/cli"
	"github.com/terraincognita07/fertilitrack/internal/config"
	"github.com/terraincognita07/fertilitrack/internal/models"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.Load).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type configLoader func() (*config.Config, error)

func newRootCmd(load configLoader) *cobra.Command {
	root := &cobra.Command{
		Use:          "fertilitrack",
		Short:        "Fertility and health analytics API",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(load),
		newCreateUserCmd(load),
		newResetPasswordCmd(load),
		newImportContentCmd(load),
	)
	return root
}

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg)
		},
	}
}

// withRuntime opens the database for one-shot commands and closes it afterwards.
func withRuntime(load configLoader, run func(runtime *app.Runtime) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	app.NewLogger(cfg.Log)

	runtime, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer runtime.Close()
	return run(runtime)
}

func newCreateUserCmd(load configLoader) *cobra.Command {
	var (
		email       string
		password    string
		displayName string
		role        string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an owner or partner account",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole := models.Role(strings.ToLower(strings.TrimSpace(role)))
			if parsedRole != models.RoleOwner && parsedRole != models.RolePartner {
				return fmt.Errorf("--role must be %q or %q", models.RoleOwner, models.RolePartner)
			}
			if password == "" {
				prompted, err := promptPassword(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				password = prompted
			}

			return withRuntime(load, func(runtime *app.Runtime) error {
				return cli.RunCreateUser(cmd.Context(), runtime.Auth, cli.CreateUserInput{
					Email:       email,
					Password:    password,
					DisplayName: displayName,
					Role:        parsedRole,
				}, time.Now(), cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name shown to a linked partner")
	cmd.Flags().StringVar(&role, "role", string(models.RoleOwner), "owner or partner")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func promptPassword(in io.Reader, out io.Writer) (string, error) {
	stdin, ok := in.(*os.File)
	if !ok {
		return "", errors.New("--password is required when stdin is not a terminal")
	}
	return cli.PromptPassword(stdin, out, "Password: ")
}

func newResetPasswordCmd(load configLoader) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace a user's password with a temporary one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(load, func(runtime *app.Runtime) error {
				return cli.RunResetPassword(cmd.Context(), runtime.Auth, email, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newImportContentCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "import-content <catalog.yaml>",
		Short: "Load or update the educational content catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(load, func(runtime *app.Runtime) error {
				return cli.RunImportContent(cmd.Context(), runtime.Content, args[0], cmd.OutOrStdout())
			})
		},
	}
}
