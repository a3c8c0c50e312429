// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/platform"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/utils"
	"github.com/MKhiriev/go-health-guard/models"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo store.AuditLogRepository

	retentionDays int
	deviceInfo    string
	userAgent     string
	sessionID     func() string

	queue chan models.AuditLogEntry
	stop  chan struct{}
	wg    sync.WaitGroup

	// overflow bounds the writers started when the queue is full.
	overflow chan struct{}

	// closeMu orders Close after every Log that saw the sink open.
	closeMu sync.RWMutex
	closed  bool

	// pending counts entries accepted but not yet written; idle is closed
	// whenever it drops to zero.
	mu      sync.Mutex
	pending int
	idle    chan struct{}

	now    func() time.Time
	logger *logger.Logger
}

// NewAuditService starts cfg.AuditWorkers writers draining a queue of
// cfg.AuditQueueSize entries. sessionID supplies the session recorded with
// each entry; it may be nil.
func NewAuditService(repo store.AuditLogRepository, cfg config.Security, app config.App, sessionID func() string, log *logger.Logger) AuditService {
	return newAuditService(repo, cfg, app, sessionID, time.Now, log)
}

func newAuditService(repo store.AuditLogRepository, cfg config.Security, app config.App, sessionID func() string, now func() time.Time, log *logger.Logger) *auditService {
	if cfg.AuditQueueSize <= 0 {
		cfg.AuditQueueSize = config.DefaultAuditQueueSize
	}
	if cfg.AuditWorkers <= 0 {
		cfg.AuditWorkers = config.DefaultAuditWorkers
	}
	if cfg.AuditRetentionDays <= 0 {
		cfg.AuditRetentionDays = config.DefaultAuditRetentionDays
	}
	if sessionID == nil {
		sessionID = func() string { return "" }
	}

	idle := make(chan struct{})
	close(idle)

	s := &auditService{
		repo:          repo,
		retentionDays: cfg.AuditRetentionDays,
		deviceInfo:    platform.DeviceInfo(),
		userAgent:     platform.UserAgent(app.Name, app.Version),
		sessionID:     sessionID,
		queue:         make(chan models.AuditLogEntry, cfg.AuditQueueSize),
		stop:          make(chan struct{}),
		overflow:      make(chan struct{}, cfg.AuditWorkers),
		idle:          idle,
		now:           now,
		logger:        log,
	}

	for range cfg.AuditWorkers {
		s.wg.Add(1)
		go s.run()
	}

	return s
}

func (s *auditService) run() {
	defer s.wg.Done()

	for {
		select {
		case entry := <-s.queue:
			s.write(entry)
		case <-s.stop:
			return
		}
	}
}

func (s *auditService) Log(event models.AuditEvent) {
	if !event.EventType.Valid() {
		s.logger.Warn().
			Str("func", "auditService.Log").
			Str("event_type", string(event.EventType)).
			Msg("unknown audit event type, entry dropped")
		return
	}

	entry := models.AuditLogEntry{
		ID:             utils.NewID(),
		UserID:         event.UserID,
		EventType:      event.EventType,
		Action:         event.Action,
		ResourceType:   event.ResourceType,
		ResourceID:     event.ResourceID,
		Timestamp:      s.now(),
		DeviceInfo:     s.deviceInfo,
		UserAgent:      s.userAgent,
		SessionID:      s.sessionID(),
		AdditionalInfo: event.AdditionalInfo,
	}

	s.closeMu.RLock()
	if s.closed {
		s.closeMu.RUnlock()
		s.logger.Warn().
			Str("func", "auditService.Log").
			Str("event_type", string(event.EventType)).
			Str("action", event.Action).
			Msg("audit sink closed, entry dropped")
		return
	}

	s.acquire()
	select {
	case s.queue <- entry:
		s.closeMu.RUnlock()
		return
	default:
	}
	s.closeMu.RUnlock()

	// pending already counts the entry, so Close waits for it either way
	select {
	case s.overflow <- struct{}{}:
		s.logger.Warn().Str("func", "auditService.Log").Msg("audit queue full, writing out of band")
		go func() {
			defer func() { <-s.overflow }()
			s.write(entry)
		}()
	default:
		s.logger.Warn().Str("func", "auditService.Log").Msg("audit queue full, writing inline")
		s.write(entry)
	}
}

func (s *auditService) acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++
}

func (s *auditService) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending--
	if s.pending == 0 {
		close(s.idle)
	}
}

func (s *auditService) write(entry models.AuditLogEntry) {
	defer s.release()
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error().
				Str("func", "auditService.write").
				Str("event_type", string(entry.EventType)).
				Interface("panic", p).
				Msg("audit write panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Err(err).
			Str("func", "auditService.write").
			Str("event_type", string(entry.EventType)).
			Str("action", entry.Action).
			Msg("failed to write audit entry")
		return
	}

	if entry.EventType.IsCritical() {
		s.logger.Warn().
			Str("event_type", string(entry.EventType)).
			Str("user_id", entry.UserID).
			Msgf("Critical event: %s - %s for user %s", entry.EventType, entry.Action, entry.UserID)
	}
}

func (s *auditService) Flush(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *auditService) Close(ctx context.Context) error {
	s.closeMu.Lock()
	if s.closed {
		s.closeMu.Unlock()
		return nil
	}
	s.closed = true
	s.closeMu.Unlock()

	err := s.Flush(ctx)
	close(s.stop)
	s.wg.Wait()

	if err != nil {
		return fmt.Errorf("flush audit queue: %w", err)
	}
	return nil
}

// ── typed helpers ────────────────────────────────────────────────────────────

func (s *auditService) LogHealthDataAccess(userID, action, dataType string, recordCount int, additionalInfo string) {
	info := "dataType=" + dataType + ", recordCount=" + strconv.Itoa(recordCount)
	if additionalInfo != "" {
		info += ", " + additionalInfo
	}

	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventHealthDataRead,
		Action:         action,
		ResourceType:   models.ResourceHealthData,
		ResourceID:     dataType,
		AdditionalInfo: info,
	})
}

func (s *auditService) LogHealthDataModification(userID, action, dataType, recordID, oldValue, newValue string) {
	resourceID := recordID
	if resourceID == "" {
		resourceID = dataType
	}

	s.Log(models.AuditEvent{
		UserID:       userID,
		EventType:    models.EventHealthDataWrite,
		Action:       action,
		ResourceType: models.ResourceHealthData,
		ResourceID:   resourceID,
		AdditionalInfo: joinInfo(
			"dataType", dataType,
			"recordId", recordID,
			"oldValue", oldValue,
			"newValue", newValue,
		),
	})
}

func (s *auditService) LogAuthentication(userID string, eventType models.EventType, success bool, method, failureReason string) {
	action := "FAILURE"
	if success {
		action = "SUCCESS"
	}

	info := "method=" + method + ", success=" + strconv.FormatBool(success)
	if failureReason != "" {
		info += ", reason=" + failureReason
	}

	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      eventType,
		Action:         action,
		ResourceType:   models.ResourceAuthentication,
		ResourceID:     method,
		AdditionalInfo: info,
	})
}

func (s *auditService) LogDataDeletion(userID, action, dataType string) {
	var info string
	if dataType != "" {
		info = "dataType=" + dataType
	}

	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventDataDeletion,
		Action:         action,
		ResourceType:   models.ResourceDataDeletion,
		ResourceID:     dataType,
		AdditionalInfo: info,
	})
}

func (s *auditService) LogPrivacySettingsChange(userID, action, details string) {
	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventPrivacySettingsChange,
		Action:         action,
		ResourceType:   models.ResourcePrivacy,
		AdditionalInfo: details,
	})
}

func (s *auditService) LogSecuritySettingsChange(userID, action, settingType, oldValue, newValue string) {
	s.Log(models.AuditEvent{
		UserID:       userID,
		EventType:    models.EventSecuritySettingsChange,
		Action:       action,
		ResourceType: models.ResourceSecurity,
		ResourceID:   settingType,
		AdditionalInfo: joinInfo(
			"settingType", settingType,
			"oldValue", oldValue,
			"newValue", newValue,
		),
	})
}

func (s *auditService) LogExternalSync(userID, platformName, action string, recordCount int, success bool, errorMessage string) {
	info := "platform=" + platformName +
		", recordCount=" + strconv.Itoa(recordCount) +
		", success=" + strconv.FormatBool(success)
	if errorMessage != "" {
		info += ", error=" + errorMessage
	}

	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventExternalSync,
		Action:         action,
		ResourceType:   models.ResourceExternalPlatform,
		ResourceID:     platformName,
		AdditionalInfo: info,
	})
}

func (s *auditService) LogSensitiveDataAccess(userID, dataType, action, justification string) {
	s.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventSensitiveDataAccess,
		Action:         action,
		ResourceType:   models.ResourceSensitiveData,
		ResourceID:     dataType,
		AdditionalInfo: joinInfo("dataType", dataType, "justification", justification),
	})
}

// joinInfo renders non-empty key/value pairs as "k1=v1, k2=v2".
func joinInfo(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		parts = append(parts, pairs[i]+"="+pairs[i+1])
	}
	return strings.Join(parts, ", ")
}

// ── reads and retention ──────────────────────────────────────────────────────

func (s *auditService) Query(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	entries, err := s.repo.Query(ctx, filter)
	if err != nil {
		s.logger.Err(err).Str("func", "auditService.Query").Msg("failed to query audit log")
		return nil, err
	}
	return entries, nil
}

func (s *auditService) Export(ctx context.Context, userID string) ([]map[string]any, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	entries, err := s.repo.Query(ctx, models.AuditFilter{UserID: userID, Limit: models.NoAuditQueryLimit})
	if err != nil {
		s.logger.Err(err).Str("func", "auditService.Export").Msg("failed to read audit log for export")
		return nil, err
	}

	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]any{
			"id":             e.ID,
			"eventType":      string(e.EventType),
			"action":         e.Action,
			"resourceType":   e.ResourceType,
			"resourceId":     optional(e.ResourceID),
			"timestamp":      e.Timestamp.Format(time.RFC3339),
			"ipAddress":      nil,
			"userAgent":      optional(e.UserAgent),
			"sessionId":      optional(e.SessionID),
			"additionalInfo": optional(e.AdditionalInfo),
		})
	}

	return out, nil
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s *auditService) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = s.retentionDays
	}

	cutoff := s.now().AddDate(0, 0, -days)
	removed, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Str("func", "auditService.PurgeOlderThan").Msg("failed to purge audit log")
		return 0, err
	}

	s.logger.Info().
		Str("func", "auditService.PurgeOlderThan").
		Int("days", days).
		Int64("removed", removed).
		Msg("audit log purged")
	return removed, nil
}
