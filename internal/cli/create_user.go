package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

type UserRegistrar interface {
	RegisterUser(ctx context.Context, email string, password string, displayName string, role models.Role, now time.Time) (models.User, error)
}

type CreateUserInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        models.Role
}

func RunCreateUser(ctx context.Context, registrar UserRegistrar, input CreateUserInput, now time.Time, out io.Writer) error {
	user, err := registrar.RegisterUser(ctx, input.Email, input.Password, input.DisplayName, input.Role, now)
	if err != nil {
		return fmt.Errorf("create user %s: %w", input.Email, err)
	}

	fmt.Fprintf(out, "Created %s user %s (id %d)\n", user.Role, user.Email, user.ID)
	return nil
}
