// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/store"
)

const (
	minPINLength = 4
	maxPINLength = 12
)

type pinCredentialService struct {
	prefs    store.Preferences
	hasher   *crypto.PINHasher
	prompter PINPrompter
	logger   *logger.Logger
}

// NewPINCredentialService verifies the manual unlock PIN. The Argon2id
// verifier and its salt are kept in the secure preference store.
func NewPINCredentialService(prefs store.Preferences, hasher *crypto.PINHasher, prompter PINPrompter, log *logger.Logger) PINManager {
	return &pinCredentialService{
		prefs:    prefs,
		hasher:   hasher,
		prompter: prompter,
		logger:   log,
	}
}

func (c *pinCredentialService) HasPIN() bool {
	return c.prefs.Contains(prefManualPINHash) && c.prefs.Contains(prefManualPINSalt)
}

func (c *pinCredentialService) SetPIN(ctx context.Context, pin string) error {
	if !validPIN(pin) {
		return ErrInvalidPIN
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate pin salt: %w", err)
	}

	err = c.prefs.PutAll(ctx, map[string]any{
		prefManualPINHash: base64.StdEncoding.EncodeToString(c.hasher.Hash(pin, salt)),
		prefManualPINSalt: base64.StdEncoding.EncodeToString(salt),
	})
	if err != nil {
		c.logger.Err(err).Str("func", "pinCredentialService.SetPIN").Msg("failed to store pin verifier")
		return fmt.Errorf("store pin verifier: %w", err)
	}
	return nil
}

func (c *pinCredentialService) ClearPIN(ctx context.Context) error {
	if err := c.prefs.Remove(ctx, prefManualPINHash); err != nil {
		return err
	}
	return c.prefs.Remove(ctx, prefManualPINSalt)
}

func (c *pinCredentialService) VerifyManualCredential(ctx context.Context) (bool, error) {
	if !c.HasPIN() {
		return false, ErrNoPINConfigured
	}

	hash, err := base64.StdEncoding.DecodeString(c.prefs.GetString(prefManualPINHash, ""))
	if err != nil {
		return false, fmt.Errorf("decode pin verifier: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(c.prefs.GetString(prefManualPINSalt, ""))
	if err != nil {
		return false, fmt.Errorf("decode pin salt: %w", err)
	}

	pin, err := c.prompter.PromptPIN(ctx)
	if err != nil {
		return false, fmt.Errorf("prompt pin: %w", err)
	}

	return c.hasher.Verify(pin, salt, hash), nil
}

func validPIN(pin string) bool {
	if len(pin) < minPINLength || len(pin) > maxPINLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
