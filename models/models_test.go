// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeletionResult(t *testing.T) {
	tests := []struct {
		name   string
		failed []string
		want   DeletionResult
	}{
		{name: "no failures", failed: nil, want: DeletionSuccess{}},
		{name: "one failure", failed: []string{"a"}, want: DeletionPartialSuccess{FailedOperations: []string{"a"}}},
		{name: "three failures", failed: []string{"a", "b", "c"}, want: DeletionPartialSuccess{FailedOperations: []string{"a", "b", "c"}}},
		{
			name:   "four failures",
			failed: []string{"a", "b", "c", "d"},
			want:   DeletionError{Message: "Multiple deletion operations failed: a, b, c, d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDeletionResult(tt.failed))
		})
	}
}

func TestDataCategoryTable(t *testing.T) {
	table, ok := CategoryPantry.Table()
	assert.True(t, ok)
	assert.Equal(t, "pantry_items", table)

	_, ok = DataCategory("NOTES").Table()
	assert.False(t, ok)

	for _, c := range []DataCategory{CategoryMeals, CategoryRecipes, CategoryHealthMetrics, CategorySupplements, CategoryBiomarkers, CategoryPantry} {
		table, ok := c.Table()
		assert.True(t, ok, c)
		assert.Contains(t, UserOwnedTables, table)
	}
}

func TestEventType(t *testing.T) {
	assert.Len(t, AllEventTypes, 22)
	assert.True(t, EventBackupRestored.Valid())
	assert.False(t, EventType("NOPE").Valid())

	critical := 0
	for _, e := range AllEventTypes {
		if e.IsCritical() {
			critical++
		}
	}
	assert.Equal(t, 5, critical)
	assert.True(t, EventLoginFailure.IsCritical())
	assert.False(t, EventLoginSuccess.IsCritical())
}

func TestPrivacyDefaults(t *testing.T) {
	def := DefaultPrivacySettings()
	first := PrivacyFirstSettings()

	assert.True(t, def.RecipeSharingEnabled)
	assert.False(t, first.RecipeSharingEnabled)
	assert.True(t, first.CrashReportingEnabled)
	assert.True(t, first.DataExportAllowed)
	assert.False(t, first.DataSharingEnabled)
}

func TestAppBuildInfo(t *testing.T) {
	empty := NewAppBuildInfo("", "", "")
	assert.False(t, empty.HasVersion())
	assert.Equal(t, []string{"Build version: N/A", "Build date: N/A", "Build commit: N/A"}, empty.Lines())

	info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")
	assert.True(t, info.HasVersion())
	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "Build commit: abc123", info.Lines()[2])
}
