// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
)

// PrefsMasterKeyAlias is the key provider alias wrapping the preference keyset.
const PrefsMasterKeyAlias = "secure_prefs_master"

var keysetAssociatedData = []byte("secure_prefs_keyset")

// Value type tags of the stored envelope.
const (
	typeBool   = "bool"
	typeInt    = "int"
	typeInt64  = "int64"
	typeFloat  = "float"
	typeString = "string"
)

// prefEnvelope is the plaintext of every stored value.
type prefEnvelope struct {
	Type  string          `json:"t"`
	Value json.RawMessage `json:"v"`
}

type securePreferences struct {
	db     *DB
	cipher *crypto.PreferenceCipher
	logger *logger.Logger

	mu    sync.RWMutex
	cache map[string]any
}

// NewSecurePreferences opens the encrypted preference store. The keyset is
// created and wrapped by keys on first use. All entries are decrypted into
// memory once; entries that fail to decrypt are dropped from the table.
func NewSecurePreferences(ctx context.Context, db *DB, keys crypto.KeyProvider, log *logger.Logger) (Preferences, error) {
	keyset, err := loadOrCreateKeyset(ctx, db, keys)
	if err != nil {
		log.Err(err).Str("func", "NewSecurePreferences").Msg("error loading preference keyset")
		return nil, fmt.Errorf("error loading preference keyset: %w", err)
	}
	prefCipher, err := crypto.NewPreferenceCipher(keyset)
	memguard.WipeBytes(keyset)
	if err != nil {
		return nil, fmt.Errorf("error creating preference cipher: %w", err)
	}

	p := &securePreferences{
		db:     db,
		cipher: prefCipher,
		logger: log,
		cache:  make(map[string]any),
	}
	if err = p.load(ctx); err != nil {
		log.Err(err).Str("func", "NewSecurePreferences").Msg("error loading preferences")
		return nil, err
	}

	return p, nil
}

func loadOrCreateKeyset(ctx context.Context, db *DB, keys crypto.KeyProvider) ([]byte, error) {
	var nonce, wrapped []byte
	err := db.QueryRowContext(ctx, selectKeysetQuery).Scan(&nonce, &wrapped)
	switch {
	case err == nil:
		return keys.Open(PrefsMasterKeyAlias, nonce, wrapped, keysetAssociatedData)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	keyset, err := crypto.NewPreferenceKeyset()
	if err != nil {
		return nil, err
	}
	nonce, wrapped, err = keys.Seal(PrefsMasterKeyAlias, keyset, keysetAssociatedData)
	if err != nil {
		memguard.WipeBytes(keyset)
		return nil, err
	}
	if _, err = db.ExecContext(ctx, insertKeysetQuery, nonce, wrapped, time.Now().UnixMilli()); err != nil {
		memguard.WipeBytes(keyset)
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return keyset, nil
}

func (p *securePreferences) load(ctx context.Context) error {
	rows, err := p.db.QueryContext(ctx, selectAllPrefsQuery)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var broken [][]byte
	for rows.Next() {
		var nameCipher, valueCipher []byte
		if err = rows.Scan(&nameCipher, &valueCipher); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		name, value, decErr := p.decryptEntry(nameCipher, valueCipher)
		if decErr != nil {
			broken = append(broken, nameCipher)
			continue
		}
		p.cache[name] = value
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for _, nameCipher := range broken {
		p.logger.Warn().Str("func", "securePreferences.load").Msg("dropping undecryptable preference entry")
		if _, err = p.db.ExecContext(ctx, deletePrefQuery, nameCipher); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (p *securePreferences) decryptEntry(nameCipher, valueCipher []byte) (string, any, error) {
	name, err := p.cipher.DecryptName(nameCipher)
	if err != nil {
		return "", nil, err
	}
	plain, err := p.cipher.DecryptValue(nameCipher, valueCipher)
	if err != nil {
		return "", nil, err
	}
	value, err := decodeValue(plain)
	if err != nil {
		return "", nil, err
	}
	return name, value, nil
}

func (p *securePreferences) PutBool(ctx context.Context, key string, value bool) error {
	return p.PutAll(ctx, map[string]any{key: value})
}

func (p *securePreferences) PutInt(ctx context.Context, key string, value int) error {
	return p.PutAll(ctx, map[string]any{key: value})
}

func (p *securePreferences) PutInt64(ctx context.Context, key string, value int64) error {
	return p.PutAll(ctx, map[string]any{key: value})
}

func (p *securePreferences) PutFloat(ctx context.Context, key string, value float64) error {
	return p.PutAll(ctx, map[string]any{key: value})
}

func (p *securePreferences) PutString(ctx context.Context, key string, value string) error {
	return p.PutAll(ctx, map[string]any{key: value})
}

func (p *securePreferences) PutAll(ctx context.Context, entries map[string]any) error {
	if len(entries) == 0 {
		return nil
	}

	type row struct{ name, value []byte }
	rows := make([]row, 0, len(entries))
	for key, value := range entries {
		if key == "" {
			return ErrEmptyKey
		}
		plain, err := encodeValue(value)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		nameCipher := p.cipher.EncryptName(key)
		valueCipher, err := p.cipher.EncryptValue(nameCipher, plain)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		rows = append(rows, row{name: nameCipher, value: valueCipher})
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, r := range rows {
			if _, err := tx.ExecContext(ctx, upsertPrefQuery, r.name, r.value); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		p.logger.Err(err).Str("func", "securePreferences.PutAll").Msg("error writing preferences")
		return err
	}

	for key, value := range entries {
		p.cache[key] = normalizeValue(value)
	}

	return nil
}

func (p *securePreferences) GetBool(key string, def bool) bool {
	return getAs(p, key, def)
}

func (p *securePreferences) GetInt(key string, def int) int {
	return getAs(p, key, def)
}

func (p *securePreferences) GetInt64(key string, def int64) int64 {
	return getAs(p, key, def)
}

func (p *securePreferences) GetFloat(key string, def float64) float64 {
	return getAs(p, key, def)
}

func (p *securePreferences) GetString(key string, def string) string {
	return getAs(p, key, def)
}

func getAs[T any](p *securePreferences, key string, def T) T {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.cache[key].(T)
	if !ok {
		return def
	}
	return value
}

func (p *securePreferences) Contains(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.cache[key]
	return ok
}

func (p *securePreferences) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Sorted(maps.Keys(p.cache))
}

func (p *securePreferences) Remove(ctx context.Context, key string) error {
	_, err := p.removeMatching(ctx, func(k string) bool { return k == key })
	return err
}

func (p *securePreferences) RemoveKeysWithPrefix(ctx context.Context, prefix string) (int, error) {
	return p.removeMatching(ctx, func(k string) bool { return strings.HasPrefix(k, prefix) })
}

func (p *securePreferences) removeMatching(ctx context.Context, match func(string) bool) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var keys []string
	for key := range p.cache {
		if match(key) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}

	err := p.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, deletePrefQuery, p.cipher.EncryptName(key)); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		p.logger.Err(err).Str("func", "securePreferences.removeMatching").Msg("error removing preferences")
		return 0, err
	}

	for _, key := range keys {
		delete(p.cache, key)
	}

	return len(keys), nil
}

func (p *securePreferences) ClearAll(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.db.ExecContext(ctx, deleteAllPrefsQuery); err != nil {
		p.logger.Err(err).Str("func", "securePreferences.ClearAll").Msg("error clearing preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	clear(p.cache)

	return nil
}

func (p *securePreferences) ExportKeysContaining(substring string) map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[string]any)
	for key, value := range p.cache {
		if strings.Contains(key, substring) {
			result[key] = value
		}
	}
	return result
}

func (p *securePreferences) ImportEntries(ctx context.Context, entries map[string]any) error {
	supported := make(map[string]any, len(entries))
	for key, value := range entries {
		if _, err := encodeValue(value); err != nil {
			p.logger.Debug().Str("func", "securePreferences.ImportEntries").Str("key", key).Msg("skipping unsupported value")
			continue
		}
		supported[key] = value
	}
	return p.PutAll(ctx, supported)
}

// normalizeValue maps the accepted Go types onto the cached representation.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case float32:
		return float64(v)
	case int32:
		return int(v)
	default:
		return v
	}
}

func encodeValue(value any) ([]byte, error) {
	var tag string
	switch normalizeValue(value).(type) {
	case bool:
		tag = typeBool
	case int:
		tag = typeInt
	case int64:
		tag = typeInt64
	case float64:
		tag = typeFloat
	case string:
		tag = typeString
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValueType, value)
	}

	raw, err := json.Marshal(normalizeValue(value))
	if err != nil {
		return nil, err
	}
	return json.Marshal(prefEnvelope{Type: tag, Value: raw})
}

func decodeValue(plain []byte) (any, error) {
	var env prefEnvelope
	if err := json.Unmarshal(plain, &env); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(env.Value))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	switch env.Type {
	case typeBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case typeString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case typeInt, typeInt64:
		if n, ok := raw.(json.Number); ok {
			v, err := n.Int64()
			if err != nil {
				return nil, err
			}
			if env.Type == typeInt {
				return int(v), nil
			}
			return v, nil
		}
	case typeFloat:
		if n, ok := raw.(json.Number); ok {
			return n.Float64()
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueType, env.Type)
}
