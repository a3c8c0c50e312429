// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-guard/models"
)

var errBoom = errors.New("boom")

// memPrefs: in-memory store.Preferences; writeErr заставляет все записи
// падать.
type memPrefs struct {
	mu       sync.Mutex
	data     map[string]any
	writeErr error
}

func newMemPrefs() *memPrefs {
	return &memPrefs{data: make(map[string]any)}
}

func (p *memPrefs) put(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return p.writeErr
	}
	p.data[key] = value
	return nil
}

func (p *memPrefs) PutBool(_ context.Context, key string, value bool) error {
	return p.put(key, value)
}
func (p *memPrefs) PutInt(_ context.Context, key string, value int) error { return p.put(key, value) }
func (p *memPrefs) PutInt64(_ context.Context, key string, value int64) error {
	return p.put(key, value)
}
func (p *memPrefs) PutFloat(_ context.Context, key string, value float64) error {
	return p.put(key, value)
}
func (p *memPrefs) PutString(_ context.Context, key string, value string) error {
	return p.put(key, value)
}

func (p *memPrefs) PutAll(_ context.Context, entries map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return p.writeErr
	}
	maps.Copy(p.data, entries)
	return nil
}

func memGet[T any](p *memPrefs, key string, def T) T {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.data[key].(T); ok {
		return v
	}
	return def
}

func (p *memPrefs) GetBool(key string, def bool) bool        { return memGet(p, key, def) }
func (p *memPrefs) GetInt(key string, def int) int           { return memGet(p, key, def) }
func (p *memPrefs) GetInt64(key string, def int64) int64     { return memGet(p, key, def) }
func (p *memPrefs) GetFloat(key string, def float64) float64 { return memGet(p, key, def) }
func (p *memPrefs) GetString(key string, def string) string  { return memGet(p, key, def) }

func (p *memPrefs) Contains(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.data[key]
	return ok
}

func (p *memPrefs) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Sorted(maps.Keys(p.data))
}

func (p *memPrefs) Remove(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return p.writeErr
	}
	delete(p.data, key)
	return nil
}

func (p *memPrefs) RemoveKeysWithPrefix(_ context.Context, prefix string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	n := 0
	for k := range p.data {
		if strings.HasPrefix(k, prefix) {
			delete(p.data, k)
			n++
		}
	}
	return n, nil
}

func (p *memPrefs) ClearAll(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return p.writeErr
	}
	clear(p.data)
	return nil
}

func (p *memPrefs) ExportKeysContaining(substring string) map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]any)
	for k, v := range p.data {
		if strings.Contains(k, substring) {
			out[k] = v
		}
	}
	return out
}

func (p *memPrefs) ImportEntries(ctx context.Context, entries map[string]any) error {
	return p.PutAll(ctx, entries)
}

func (p *memPrefs) setWriteErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeErr = err
}

// fakeClock: управляемые часы для сервисов с полем now.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// spyAudit записывает все события, переданные в AuditService.
type spyAudit struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (s *spyAudit) record(e models.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *spyAudit) Events() []models.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

func (s *spyAudit) Actions() []string {
	var out []string
	for _, e := range s.Events() {
		out = append(out, e.Action)
	}
	return out
}

func (s *spyAudit) ByEventType(t models.EventType) []models.AuditEvent {
	var out []models.AuditEvent
	for _, e := range s.Events() {
		if e.EventType == t {
			out = append(out, e)
		}
	}
	return out
}

func (s *spyAudit) Log(e models.AuditEvent) { s.record(e) }

func (s *spyAudit) LogHealthDataAccess(userID, action, dataType string, _ int, _ string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventHealthDataRead, Action: action, ResourceID: dataType})
}

func (s *spyAudit) LogHealthDataModification(userID, action, dataType, _, _, _ string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventHealthDataWrite, Action: action, ResourceID: dataType})
}

func (s *spyAudit) LogAuthentication(userID string, eventType models.EventType, success bool, method, reason string) {
	action := "FAILURE"
	if success {
		action = "SUCCESS"
	}
	s.record(models.AuditEvent{UserID: userID, EventType: eventType, Action: action, ResourceID: method, AdditionalInfo: reason})
}

func (s *spyAudit) LogDataDeletion(userID, action, dataType string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventDataDeletion, Action: action, ResourceID: dataType})
}

func (s *spyAudit) LogPrivacySettingsChange(userID, action, details string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventPrivacySettingsChange, Action: action, AdditionalInfo: details})
}

func (s *spyAudit) LogSecuritySettingsChange(userID, action, settingType, _, newValue string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventSecuritySettingsChange, Action: action, ResourceID: settingType, AdditionalInfo: newValue})
}

func (s *spyAudit) LogExternalSync(userID, platformName, action string, _ int, _ bool, _ string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventExternalSync, Action: action, ResourceID: platformName})
}

func (s *spyAudit) LogSensitiveDataAccess(userID, dataType, action, _ string) {
	s.record(models.AuditEvent{UserID: userID, EventType: models.EventSensitiveDataAccess, Action: action, ResourceID: dataType})
}

func (s *spyAudit) Query(context.Context, models.AuditFilter) ([]models.AuditLogEntry, error) {
	return nil, nil
}

func (s *spyAudit) Export(context.Context, string) ([]map[string]any, error) { return nil, nil }

func (s *spyAudit) PurgeOlderThan(context.Context, int) (int64, error) { return 0, nil }

func (s *spyAudit) Flush(context.Context) error { return nil }

func (s *spyAudit) Close(context.Context) error { return nil }
