// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DeletionResult is the outcome of a deletion request. The concrete value is
// one of DeletionSuccess, DeletionPartialSuccess or DeletionError.
type DeletionResult interface {
	deletionResult()
}

// DeletionSuccess means every stage completed.
type DeletionSuccess struct{}

// DeletionPartialSuccess lists the stages that failed when at least one but
// fewer than MaxPartialFailures stages failed.
type DeletionPartialSuccess struct {
	FailedOperations []string
}

// DeletionError is returned when the request failed as a whole.
type DeletionError struct {
	Message string
}

func (DeletionSuccess) deletionResult()        {}
func (DeletionPartialSuccess) deletionResult() {}
func (DeletionError) deletionResult()          {}

// MaxPartialFailures is the number of failed stages from which a full account
// deletion is reported as DeletionError instead of DeletionPartialSuccess.
const MaxPartialFailures = 4

// NewDeletionResult folds the list of failed stage descriptions into a result.
func NewDeletionResult(failed []string) DeletionResult {
	switch {
	case len(failed) == 0:
		return DeletionSuccess{}
	case len(failed) < MaxPartialFailures:
		return DeletionPartialSuccess{FailedOperations: failed}
	default:
		return DeletionError{Message: "Multiple deletion operations failed: " + strings.Join(failed, ", ")}
	}
}

// DataCategory names a single user data type that can be deleted on its own.
type DataCategory string

const (
	CategoryMeals         DataCategory = "MEALS"
	CategoryRecipes       DataCategory = "RECIPES"
	CategoryHealthMetrics DataCategory = "HEALTH_METRICS"
	CategorySupplements   DataCategory = "SUPPLEMENTS"
	CategoryBiomarkers    DataCategory = "BIOMARKERS"
	CategoryPantry        DataCategory = "PANTRY"
)

// Table returns the local and remote table name that holds the category.
func (c DataCategory) Table() (string, bool) {
	switch c {
	case CategoryMeals:
		return "meals", true
	case CategoryRecipes:
		return "recipes", true
	case CategoryHealthMetrics:
		return "health_metrics", true
	case CategorySupplements:
		return "supplements", true
	case CategoryBiomarkers:
		return "biomarkers", true
	case CategoryPantry:
		return "pantry_items", true
	default:
		return "", false
	}
}

// UserOwnedTables lists every local table with rows owned by a user, in the
// order they have to be deleted to satisfy foreign keys. The users table
// itself is deleted last and is not part of the list.
var UserOwnedTables = []string{
	"meals",
	"recipes",
	"health_metrics",
	"supplements",
	"biomarkers",
	"pantry_items",
	"shopping_lists",
	"meal_plans",
	"notifications",
	"daily_tracking",
	"macronutrients",
	"sync_status",
	"achievements",
	"cost_budgets",
}
