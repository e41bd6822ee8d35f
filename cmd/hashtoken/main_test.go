package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"formatd/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// scriptedReader returns the given inputs in order.
func scriptedReader(inputs ...string) tokenReader {
	i := 0
	return func(string) ([]byte, error) {
		if i >= len(inputs) {
			return nil, errors.New("no more input")
		}
		v := inputs[i]
		i++
		return []byte(v), nil
	}
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestRootCommand(t *testing.T) {
	const token = "correct-horse-battery"

	tests := []struct {
		name    string
		args    []string
		inputs  []string
		wantErr bool
		wantOut string
	}{
		{name: "hash", args: []string{"hash"}, inputs: []string{token, token}, wantOut: "$2a$"},
		{name: "hash mismatch", args: []string{"hash"}, inputs: []string{token, "different-token-x"}, wantErr: true},
		{name: "verify needs hash", args: []string{"verify"}, wantErr: true},
		{name: "hash takes no args", args: []string{"hash", "extra"}, wantErr: true},
		{name: "unknown command", args: []string{"reset"}, wantErr: true},
		{name: "help", args: []string{"--help"}, wantOut: "Check a token against a bcrypt hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			cmd := newRootCmd(scriptedReader(tt.inputs...))
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q missing %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestVerifyCommandRoundTrip(t *testing.T) {
	const token = "correct-horse-battery"
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash token: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd(scriptedReader(token))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"verify", string(hash)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "Token matches.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestDatabasePath(t *testing.T) {
	if got := databasePath(""); got != filepath.Join(defaultDatabaseDir, "formats.db") {
		t.Errorf("databasePath(\"\") = %q", got)
	}
	if got := databasePath("/tmp/x"); got != filepath.Join("/tmp/x", "formats.db") {
		t.Errorf("databasePath(/tmp/x) = %q", got)
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		confirm string
		wantErr error
	}{
		{"valid", "correct-horse-battery", "correct-horse-battery", nil},
		{"mismatch", "correct-horse-battery", "correct-horse-batterz", errTokenMismatch},
		{"too short", "short", "short", errTokenTooShort},
		{"whitespace padded", "   abc   ", "   abc   ", errTokenTooShort},
		{"exact minimum", "123456789012", "123456789012", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateToken([]byte(tt.token), []byte(tt.confirm))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateToken() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	const token = "correct-horse-battery"

	var out, errOut bytes.Buffer
	if !hashToken(scriptedReader(token, token), &out, &errOut) {
		t.Fatalf("hashToken failed: %s", errOut.String())
	}

	hash := strings.TrimSpace(out.String())
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		t.Errorf("printed hash does not verify: %v", err)
	}
}

func TestHashTokenFailures(t *testing.T) {
	tests := []struct {
		name   string
		reader tokenReader
	}{
		{"mismatch", scriptedReader("correct-horse-battery", "something-else-entirely")},
		{"too short", scriptedReader("short", "short")},
		{"read error", scriptedReader()},
		{"confirm read error", scriptedReader("correct-horse-battery")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if hashToken(tt.reader, &out, &errOut) {
				t.Error("expected hashToken to fail")
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed to stdout, got %q", out.String())
			}
			if !strings.Contains(errOut.String(), "Error") {
				t.Errorf("expected an error message, got %q", errOut.String())
			}
		})
	}
}

func TestVerifyToken(t *testing.T) {
	const token = "correct-horse-battery"
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash token: %v", err)
	}

	tests := []struct {
		name    string
		hash    string
		input   string
		want    bool
		wantOut string
	}{
		{"match", string(hash), token, true, "Token matches."},
		{"mismatch", string(hash), "wrong-token-value", false, "Token does not match."},
		{"malformed hash", "not-a-hash", token, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			got := verifyToken(tt.hash, scriptedReader(tt.input), &out, &errOut)
			if got != tt.want {
				t.Errorf("verifyToken() = %v, want %v", got, tt.want)
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q missing %q", out.String(), tt.wantOut)
			}
			if tt.wantOut == "" && errOut.Len() == 0 {
				t.Error("expected an error message for a malformed hash")
			}
		})
	}
}

// =============================================================================
// Integration Tests
// =============================================================================

func TestShowStatusIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "formats.db")
	db, err := database.New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.SaveFormat(context.Background(), "european", "%d.%m.%Y"); err != nil {
		t.Fatalf("SaveFormat failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash token: %v", err)
	}

	var out bytes.Buffer
	if !showStatus(context.Background(), string(hash), dbPath, &out) {
		t.Errorf("showStatus returned false: %s", out.String())
	}
	if !strings.Contains(out.String(), "1 stored formats") {
		t.Errorf("expected stored format count, got %q", out.String())
	}
	if !strings.Contains(out.String(), "bcrypt cost 4") {
		t.Errorf("expected bcrypt cost, got %q", out.String())
	}
}

func TestShowStatusWithoutHash(t *testing.T) {
	var out bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.db")

	if showStatus(context.Background(), "", missing, &out) {
		t.Error("expected false without a configured hash")
	}
	if !strings.Contains(out.String(), "not configured") || !strings.Contains(out.String(), "not found") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestShowStatusInvalidHash(t *testing.T) {
	var out bytes.Buffer

	if showStatus(context.Background(), "plaintext", filepath.Join(t.TempDir(), "missing.db"), &out) {
		t.Error("expected false for an invalid hash")
	}
	if !strings.Contains(out.String(), "invalid hash") {
		t.Errorf("unexpected output %q", out.String())
	}
}
