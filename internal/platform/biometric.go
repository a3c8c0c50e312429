// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform describes the host capabilities the security core depends
// on: the biometric prompt and device identification.
package platform

import (
	"sync"

	"github.com/MKhiriev/go-health-guard/models"
)

//go:generate mockgen -source=biometric.go -destination=../mock/biometric_mock.go -package=mock

// Availability is the answer of the platform to "can the user authenticate
// with a strong biometric right now".
type Availability int

const (
	AvailabilitySuccess Availability = iota
	AvailabilityNoHardware
	AvailabilityHWUnavailable
	AvailabilityNoneEnrolled
	AvailabilitySecurityUpdateRequired
	AvailabilityUnsupported
	AvailabilityUnknown
)

// ErrorCode is a terminal error reported by a biometric prompt.
type ErrorCode int

const (
	ErrorHWUnavailable ErrorCode = iota + 1
	ErrorUnableToProcess
	ErrorTimeout
	ErrorNoSpace
	ErrorCanceled
	ErrorLockout
	ErrorVendor
	ErrorLockoutPermanent
	ErrorUserCanceled
	ErrorNoBiometrics
	ErrorHWNotPresent
	ErrorNegativeButton
)

// Callback receives the events of one prompt. OnSucceeded and OnError are
// terminal; OnFailed reports a rejected attempt while the prompt stays open.
type Callback interface {
	OnSucceeded()
	OnError(code ErrorCode, message string)
	OnFailed()
}

// Biometric is the platform biometric prompt.
type Biometric interface {
	CanAuthenticate() Availability
	// Authenticate shows a prompt and reports its events to cb. The returned
	// function dismisses the prompt; calling it after a terminal event is a
	// no-op.
	Authenticate(prompt models.PromptConfig, cb Callback) (cancel func())
}

type unsupportedBiometric struct{}

// NewUnsupportedBiometric returns the [Biometric] of hosts without biometric
// hardware. Every prompt ends with ErrorHWNotPresent.
func NewUnsupportedBiometric() Biometric {
	return unsupportedBiometric{}
}

func (unsupportedBiometric) CanAuthenticate() Availability {
	return AvailabilityNoHardware
}

func (unsupportedBiometric) Authenticate(_ models.PromptConfig, cb Callback) func() {
	var once sync.Once
	done := make(chan struct{})

	go func() {
		select {
		case <-done:
		default:
			once.Do(func() { cb.OnError(ErrorHWNotPresent, "No biometric hardware") })
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
