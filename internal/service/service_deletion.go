// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/MKhiriev/go-health-guard/internal/adapter"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/models"
)

const (
	actionDeletionStarted   = "FULL_ACCOUNT_DELETION_STARTED"
	actionDeletionCompleted = "FULL_ACCOUNT_DELETION_COMPLETED"
	actionDeletionFailed    = "FULL_ACCOUNT_DELETION_FAILED"
	actionCloudSkipped      = "CLOUD_DATA_DELETION_SKIPPED"

	actionSpecificStarted   = "SPECIFIC_DATA_DELETION_STARTED"
	actionSpecificCompleted = "SPECIFIC_DATA_DELETION_COMPLETED"
	actionSpecificFailed    = "SPECIFIC_DATA_DELETION_FAILED"
)

// deletionStage is one independent step of a full account deletion. A failed
// stage does not stop the following ones.
type deletionStage struct {
	started   string
	completed string
	failed    string
	// label prefixes the stage failure in the result.
	label string
	run   func(ctx context.Context, userID string) error
}

type deletionService struct {
	userData store.UserDataRepository
	remote   adapter.RemoteStore
	files    store.UserFileStore
	prefs    store.Preferences
	audit    AuditService

	releaseMemory func()
	logger        *logger.Logger
}

func NewDeletionService(
	userData store.UserDataRepository,
	remote adapter.RemoteStore,
	files store.UserFileStore,
	prefs store.Preferences,
	audit AuditService,
	log *logger.Logger,
) DeletionService {
	return &deletionService{
		userData:      userData,
		remote:        remote,
		files:         files,
		prefs:         prefs,
		audit:         audit,
		releaseMemory: releaseMemory,
		logger:        log,
	}
}

func releaseMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}

func (d *deletionService) stages(includeCloud bool) []deletionStage {
	stages := []deletionStage{{
		started:   "LOCAL_DATA_DELETION_STARTED",
		completed: "LOCAL_DATA_DELETED",
		failed:    "LOCAL_DATA_DELETION_FAILED",
		label:     "Local database deletion",
		run:       d.userData.DeleteAllUserData,
	}}

	if includeCloud {
		stages = append(stages, deletionStage{
			started:   "CLOUD_DATA_DELETION_STARTED",
			completed: "CLOUD_DATA_DELETED",
			failed:    "CLOUD_DATA_DELETION_FAILED",
			label:     "Cloud data deletion",
			run:       d.deleteCloudAccount,
		})
	}

	return append(stages,
		deletionStage{
			started:   "CACHED_FILES_DELETION_STARTED",
			completed: "CACHED_FILES_DELETED",
			failed:    "CACHED_FILES_DELETION_FAILED",
			label:     "Cached files deletion",
			run:       d.files.DeleteUserFiles,
		},
		deletionStage{
			started:   "PREFERENCES_CLEARING_STARTED",
			completed: "PREFERENCES_CLEARED",
			failed:    "PREFERENCES_CLEARING_FAILED",
			label:     "Preferences clearing",
			run:       d.clearPreferences,
		},
	)
}

func (d *deletionService) DeleteAllUserData(ctx context.Context, userID string, includeCloud bool) models.DeletionResult {
	if userID == "" {
		d.audit.LogDataDeletion(userID, actionDeletionFailed, ErrEmptyUserID.Error())
		return models.DeletionError{Message: "Account deletion failed: " + ErrEmptyUserID.Error()}
	}

	// a started deletion runs to the end even if the caller goes away
	ctx = context.WithoutCancel(ctx)
	log := d.logger.With().Str("func", "deletionService.DeleteAllUserData").Str("user_id", userID).Logger()

	d.audit.LogDataDeletion(userID, actionDeletionStarted, "")

	var failed []string
	for _, stage := range d.stages(includeCloud) {
		if err := d.runStage(ctx, userID, stage); err != nil {
			log.Err(err).Str("stage", stage.label).Msg("deletion stage failed")
			failed = append(failed, stage.label+": "+err.Error())
		}
	}

	d.safeReleaseMemory()

	d.audit.LogDataDeletion(userID, actionDeletionCompleted, "")
	result := models.NewDeletionResult(failed)

	log.Info().Int("failed_stages", len(failed)).Msg("account deletion finished")
	return result
}

// runStage audits the stage boundaries and converts a panic into an error.
func (d *deletionService) runStage(ctx context.Context, userID string, stage deletionStage) (err error) {
	d.audit.LogDataDeletion(userID, stage.started, "")

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
		if err != nil {
			d.audit.LogDataDeletion(userID, stage.failed, err.Error())
			return
		}
		d.audit.LogDataDeletion(userID, stage.completed, "")
	}()

	return stage.run(ctx, userID)
}

func (d *deletionService) deleteCloudAccount(ctx context.Context, userID string) error {
	err := d.remote.DeleteUserAccount(ctx, userID)
	if errors.Is(err, adapter.ErrRemoteDisabled) {
		d.audit.LogDataDeletion(userID, actionCloudSkipped, "")
		return nil
	}
	return err
}

// clearPreferences removes the user's namespaced keys and wipes the store
// once no user is left on the device.
func (d *deletionService) clearPreferences(ctx context.Context, userID string) error {
	if _, err := d.prefs.RemoveKeysWithPrefix(ctx, store.UserKeyPrefix(userID)); err != nil {
		return err
	}

	users, err := d.userData.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	return d.prefs.ClearAll(ctx)
}

func (d *deletionService) safeReleaseMemory() {
	defer func() {
		if p := recover(); p != nil {
			d.logger.Warn().Str("func", "deletionService.safeReleaseMemory").Interface("panic", p).Msg("memory release failed")
		}
	}()

	d.releaseMemory()
}

func (d *deletionService) DeleteSpecificDataType(ctx context.Context, userID string, category models.DataCategory) models.DeletionResult {
	ctx = context.WithoutCancel(ctx)
	d.audit.LogDataDeletion(userID, actionSpecificStarted, string(category))

	if err := d.deleteCategory(ctx, userID, category); err != nil {
		d.logger.Err(err).
			Str("func", "deletionService.DeleteSpecificDataType").
			Str("category", string(category)).
			Msg("data type deletion failed")

		d.audit.LogDataDeletion(userID, actionSpecificFailed, fmt.Sprintf("%s: %s", category, err))
		return models.DeletionError{Message: fmt.Sprintf("Failed to delete %s: %s", category, err)}
	}

	d.audit.LogDataDeletion(userID, actionSpecificCompleted, string(category))
	return models.DeletionSuccess{}
}

func (d *deletionService) deleteCategory(ctx context.Context, userID string, category models.DataCategory) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if err := d.userData.DeleteCategory(ctx, userID, category); err != nil {
		return fmt.Errorf("local: %w", err)
	}

	err := d.remote.DeleteUserData(ctx, userID, category)
	if err != nil && !errors.Is(err, adapter.ErrRemoteDisabled) {
		return fmt.Errorf("remote: %w", err)
	}
	return nil
}
