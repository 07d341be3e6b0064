package cli

import (
	"context"
	"fmt"
	"io"
)

type PasswordResetter interface {
	ResetPassword(ctx context.Context, email string) (string, error)
}

// RunResetPassword replaces the user's password with a generated one and prints it once.
func RunResetPassword(ctx context.Context, resetter PasswordResetter, email string, out io.Writer) error {
	temporaryPassword, err := resetter.ResetPassword(ctx, email)
	if err != nil {
		return fmt.Errorf("reset password for %s: %w", email, err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Share it over a trusted channel and ask the user to pick a new one.")
	return nil
}
