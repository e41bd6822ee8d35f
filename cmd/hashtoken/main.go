package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"formatd/internal/database"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const (
	// Default timeout for database operations
	defaultTimeout = 30 * time.Second
	// Default database directory path
	defaultDatabaseDir = "/database"
	// minTokenLength is the shortest admin token accepted
	minTokenLength = 12
)

var (
	errCommandFailed = errors.New("command failed")
	errTokenMismatch = errors.New("tokens do not match")
	errTokenTooShort = fmt.Errorf("token must be at least %d characters", minTokenLength)
)

// tokenReader reads one secret after printing prompt.
type tokenReader func(prompt string) ([]byte, error)

// readTerminal reads a token from stdin without echo.
func readTerminal(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	token, err := term.ReadPassword(syscall.Stdin)
	fmt.Fprintln(os.Stderr)
	return token, err
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	if err := newRootCmd(readTerminal).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. read supplies tokens to hash and verify.
func newRootCmd(read tokenReader) *cobra.Command {
	root := &cobra.Command{
		Use:           "hashtoken",
		Short:         "formatd admin token management",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "hash",
		Short: "Hash a new admin token for ADMIN_TOKEN_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !hashToken(read, cmd.OutOrStdout(), cmd.ErrOrStderr()) {
				return errCommandFailed
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "verify <hash>",
		Short: "Check a token against a bcrypt hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verifyToken(args[0], read, cmd.OutOrStdout(), cmd.ErrOrStderr()) {
				return errCommandFailed
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show token and database status",
		Long: fmt.Sprintf("Reports whether ADMIN_TOKEN_HASH holds a usable bcrypt hash and how many\n"+
			"formats are stored in DATABASE_DIR (default: %s).", defaultDatabaseDir),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath := databasePath(os.Getenv("DATABASE_DIR"))
			if !showStatus(cmd.Context(), os.Getenv("ADMIN_TOKEN_HASH"), dbPath, cmd.OutOrStdout()) {
				return errCommandFailed
			}
			return nil
		},
	})

	return root
}

func databasePath(dir string) string {
	if dir == "" {
		dir = defaultDatabaseDir
	}
	return filepath.Join(dir, "formats.db")
}

// validateToken checks a token and its confirmation.
func validateToken(token, confirm []byte) error {
	if !bytes.Equal(token, confirm) {
		return errTokenMismatch
	}
	if len(bytes.TrimSpace(token)) < minTokenLength {
		return errTokenTooShort
	}
	return nil
}

func hashToken(read tokenReader, out, errOut io.Writer) bool {
	token, err := read("New token: ")
	if err != nil {
		fmt.Fprintf(errOut, "Error reading token: %v\n", err)
		return false
	}

	confirm, err := read("Confirm token: ")
	if err != nil {
		fmt.Fprintf(errOut, "Error reading token: %v\n", err)
		return false
	}

	if err := validateToken(token, confirm); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return false
	}

	hash, err := bcrypt.GenerateFromPassword(token, bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(errOut, "Error: Failed to hash token: %v\n", err)
		return false
	}

	fmt.Fprintln(out, string(hash))
	return true
}

func verifyToken(hash string, read tokenReader, out, errOut io.Writer) bool {
	token, err := read("Token: ")
	if err != nil {
		fmt.Fprintf(errOut, "Error reading token: %v\n", err)
		return false
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), token)
	switch {
	case err == nil:
		fmt.Fprintln(out, "Token matches.")
		return true
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		fmt.Fprintln(out, "Token does not match.")
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return false
}

// showStatus reports the configured hash and the stored format count. It
// returns false when the hash is missing or malformed.
func showStatus(ctx context.Context, hash, dbPath string, out io.Writer) bool {
	ok := true
	if hash == "" {
		fmt.Fprintln(out, "Admin token: not configured (format registration disabled)")
		ok = false
	} else if cost, err := bcrypt.Cost([]byte(hash)); err != nil {
		fmt.Fprintf(out, "Admin token: invalid hash (%v)\n", err)
		ok = false
	} else {
		fmt.Fprintf(out, "Admin token: configured (bcrypt cost %d)\n", cost)
	}

	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(out, "Database: not found at %s\n", dbPath)
		return ok
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	db, err := database.New(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(out, "Database: failed to open %s: %v\n", dbPath, err)
		return false
	}
	defer func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
		}
	}()

	count, err := db.CountFormats(ctx)
	if err != nil {
		fmt.Fprintf(out, "Database: failed to count formats: %v\n", err)
		return false
	}
	fmt.Fprintf(out, "Database: %d stored formats in %s\n", count, dbPath)
	return ok
}
