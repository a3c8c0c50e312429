// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-health-guard/internal/adapter"
	"github.com/MKhiriev/go-health-guard/internal/service"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/models"
)

const consoleHelp = `commands:
  status                      security status
  recommendations             security recommendations
  lock | unlock               lock the session / authenticate
  foreground | background     lifecycle transitions
  app-lock on|off             toggle app lock
  timeout <minutes>           set the lock timeout
  set-pin <pin>               set the manual unlock pin
  biometric <user> on|off     enrol or revoke biometric unlock
  field-key                   show when the field key was created
  token <user> <token>        store the backend token of a user
  backup <user> <file>        write a settings backup
  restore <user> <file>       restore a settings backup
  privacy                     export privacy settings
  privacy-reset <user>        reset privacy settings to defaults
  audit <user>                export the audit log of a user
  delete <user> [cloud]       delete all data of a user
  delete-type <user> <type>   delete one data category
  quit`

var errMissingArgument = errors.New("missing argument")

// console is a line-oriented host for the security core. It also answers PIN
// prompts from the same input.
type console struct {
	in       *bufio.Scanner
	out      io.Writer
	services *service.Services
	prefs    store.Preferences
	remote   adapter.RemoteStore
}

func newConsole(in io.Reader, out io.Writer, prefs store.Preferences, remote adapter.RemoteStore) *console {
	return &console{in: bufio.NewScanner(in), out: out, prefs: prefs, remote: remote}
}

func (c *console) PromptPIN(ctx context.Context) (string, error) {
	fmt.Fprint(c.out, "pin: ")
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) Run(ctx context.Context) {
	fmt.Fprintln(c.out, consoleHelp)

	for {
		fmt.Fprint(c.out, "> ")
		if ctx.Err() != nil || !c.in.Scan() {
			return
		}

		fields := strings.Fields(c.in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return
		}

		if err := c.exec(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *console) exec(ctx context.Context, cmd string, args []string) error {
	s := c.services

	switch cmd {
	case "status":
		return c.print(s.Security.Status())
	case "recommendations":
		return c.print(s.Security.SecurityRecommendations())
	case "lock":
		s.AppLock.Lock()
		return c.print(s.AppLock.State())
	case "unlock":
		return c.print(authResultView(s.Security.AuthenticateUser(ctx, models.DefaultPromptConfig())))
	case "foreground":
		s.Security.OnForeground(ctx)
		return c.print(s.AppLock.State())
	case "background":
		s.Security.OnBackground()
		return nil
	case "app-lock":
		if len(args) < 1 {
			return errMissingArgument
		}
		return s.AppLock.SetAppLockEnabled(ctx, args[0] == "on")
	case "timeout":
		if len(args) < 1 {
			return errMissingArgument
		}
		var minutes int
		if _, err := fmt.Sscan(args[0], &minutes); err != nil {
			return err
		}
		return s.AppLock.SetLockTimeoutMinutes(ctx, minutes)
	case "set-pin":
		if len(args) < 1 {
			return errMissingArgument
		}
		return s.Credentials.SetPIN(ctx, args[0])
	case "biometric":
		if len(args) < 2 {
			return errMissingArgument
		}
		if args[1] == "on" {
			return s.Security.EnrollBiometric(ctx, args[0])
		}
		return s.Security.RevokeBiometric(ctx, args[0])
	case "field-key":
		return c.print(map[string]any{"created_at": s.Security.FieldKeyCreatedAt()})
	case "token":
		if len(args) < 2 {
			return errMissingArgument
		}
		if err := c.prefs.PutString(ctx, store.AuthTokenKey(args[0]), args[1]); err != nil {
			return err
		}
		c.remote.SetToken(args[1])
		return nil
	case "backup":
		if len(args) < 2 {
			return errMissingArgument
		}
		backup, err := s.Security.BackupSettings(ctx, args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], data, 0o600)
	case "restore":
		if len(args) < 2 {
			return errMissingArgument
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		var entries map[string]any
		if err = json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse backup: %w", err)
		}
		return s.Security.RestoreSettings(ctx, args[0], entries)
	case "privacy":
		return c.print(s.Privacy.Export())
	case "privacy-reset":
		if len(args) < 1 {
			return errMissingArgument
		}
		return s.Privacy.ResetToDefaults(ctx, args[0])
	case "audit":
		if len(args) < 1 {
			return errMissingArgument
		}
		if err := s.Audit.Flush(ctx); err != nil {
			return err
		}
		entries, err := s.Audit.Export(ctx, args[0])
		if err != nil {
			return err
		}
		return c.print(entries)
	case "delete":
		if len(args) < 1 {
			return errMissingArgument
		}
		includeCloud := len(args) > 1 && args[1] == "cloud"
		c.useStoredToken(args[0])
		return c.print(deletionResultView(s.Deletion.DeleteAllUserData(ctx, args[0], includeCloud)))
	case "delete-type":
		if len(args) < 2 {
			return errMissingArgument
		}
		category := models.DataCategory(strings.ToUpper(args[1]))
		c.useStoredToken(args[0])
		return c.print(deletionResultView(s.Deletion.DeleteSpecificDataType(ctx, args[0], category)))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// useStoredToken switches the backend token to the one saved for userID, if
// any.
func (c *console) useStoredToken(userID string) {
	if token := c.prefs.GetString(store.AuthTokenKey(userID), ""); token != "" {
		c.remote.SetToken(token)
	}
}

func (c *console) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func authResultView(r models.AuthenticationResult) map[string]string {
	status := map[models.AuthenticationStatus]string{
		models.AuthenticationSuccess:   "SUCCESS",
		models.AuthenticationCancelled: "CANCELLED",
		models.AuthenticationFailed:    "FAILED",
	}[r.Status]

	return map[string]string{"status": status, "message": r.Message}
}

func deletionResultView(r models.DeletionResult) map[string]any {
	switch v := r.(type) {
	case models.DeletionSuccess:
		return map[string]any{"result": "SUCCESS"}
	case models.DeletionPartialSuccess:
		return map[string]any{"result": "PARTIAL_SUCCESS", "failedOperations": v.FailedOperations}
	case models.DeletionError:
		return map[string]any{"result": "ERROR", "message": v.Message}
	default:
		return map[string]any{"result": "UNKNOWN"}
	}
}
