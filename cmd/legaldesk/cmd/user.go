package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"legaldesk/internal/domain/user"
	"legaldesk/internal/infrastructure/migration"
	"legaldesk/internal/infrastructure/storage"
)

var enrollmentID string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage advocate accounts",
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account; the password is read from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.OutOrStdout(), cmd.InOrStdin())
		if err != nil {
			return err
		}

		if err := migration.NewMigration(cfg.DB, nil).Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		store, err := storage.Open(cmd.Context(), cfg.DB, log)
		if err != nil {
			return err
		}
		defer store.Close()

		svc := user.NewService(storage.NewUserRepository(store, log), user.NewValidator(), log)
		err = svc.Register(cmd.Context(), args[0], password, enrollmentID)
		if errors.Is(err, user.ErrDuplicateUser) {
			return fmt.Errorf("username %q is already taken", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account %s created\n", args[0])
		return nil
	},
}

// readPassword prompts twice on a terminal, or reads one line from a pipe.
func readPassword(out io.Writer, in io.Reader) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(out, "Password: ")
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Repeat password: ")
	confirm, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", errors.New("passwords do not match")
	}
	return string(password), nil
}

func init() {
	registerCmd.Flags().StringVarP(&enrollmentID, "enrollment", "e", "", "bar council enrollment number")
	userCmd.AddCommand(registerCmd)
}
