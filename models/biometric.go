// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BiometricStatus is the kind of a biometric availability check or prompt
// outcome.
type BiometricStatus int

const (
	BiometricSuccess BiometricStatus = iota
	BiometricNotAvailable
	BiometricNotEnrolled
	BiometricError
	BiometricUserCancelled
)

func (s BiometricStatus) String() string {
	switch s {
	case BiometricSuccess:
		return "Success"
	case BiometricNotAvailable:
		return "NotAvailable"
	case BiometricNotEnrolled:
		return "NotEnrolled"
	case BiometricError:
		return "Error"
	case BiometricUserCancelled:
		return "UserCancelled"
	default:
		return "Unknown"
	}
}

// BiometricResult is a resolved biometric outcome. Message is set only for
// BiometricError.
type BiometricResult struct {
	Status  BiometricStatus
	Message string
}

// PromptConfig describes the biometric prompt shown to the user.
type PromptConfig struct {
	Title              string
	Subtitle           string
	NegativeButtonText string
}

// DefaultPromptConfig returns the prompt used to unlock the application.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Title:              "Unlock WellTrack",
		Subtitle:           "Use your biometric credential to access your health data",
		NegativeButtonText: "Use PIN",
	}
}

// AuthenticationStatus is the kind of a user authentication outcome.
type AuthenticationStatus int

const (
	AuthenticationSuccess AuthenticationStatus = iota
	AuthenticationCancelled
	AuthenticationFailed
)

// AuthenticationResult is returned by the unlock flow. Message is set only for
// AuthenticationFailed.
type AuthenticationResult struct {
	Status  AuthenticationStatus
	Message string
}
