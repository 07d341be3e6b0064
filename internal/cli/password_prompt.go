package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptPassword asks for a password on stdin. Echo is switched off when stdin is a
// terminal; piped input is read as is.
func PromptPassword(stdin *os.File, out io.Writer, label string) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	fmt.Fprint(out, label)
	restore, err := disableEcho(stdin)
	if err == nil {
		defer func() {
			restore()
			fmt.Fprintln(out)
		}()
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
