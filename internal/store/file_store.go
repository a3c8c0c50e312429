// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/logger"
)

const (
	userDirPrefix     = "user_"
	profileImagesDir  = "profile_images"
	overwriteBufBytes = 32 * 1024
)

type userFileStore struct {
	cacheDir string
	filesDir string
	logger   *logger.Logger
}

func NewUserFileStore(cfg config.Files, log *logger.Logger) UserFileStore {
	return &userFileStore{
		cacheDir: cfg.CacheDir,
		filesDir: cfg.FilesDir,
		logger:   log,
	}
}

func (s *userFileStore) DeleteUserFiles(ctx context.Context, userID string) error {
	if !validUserID(userID) {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}

	var errs []error
	for _, dir := range []string{
		filepath.Join(s.cacheDir, userDirPrefix+userID),
		filepath.Join(s.filesDir, userDirPrefix+userID),
	} {
		if err := s.deleteTree(ctx, dir); err != nil {
			errs = append(errs, err)
		}
	}

	imagesDir := filepath.Join(s.filesDir, profileImagesDir)
	entries, err := os.ReadDir(imagesDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Errorf("read %s: %w", imagesDir, err))
	}
	for _, entry := range entries {
		if !strings.Contains(entry.Name(), userID) {
			continue
		}
		if err = s.deleteTree(ctx, filepath.Join(imagesDir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		err = errors.Join(errs...)
		s.logger.Err(err).Str("func", "userFileStore.DeleteUserFiles").Msg("error deleting user files")
		return err
	}

	return nil
}

// deleteTree securely deletes every regular file below root and then removes
// root itself. A missing root is not an error.
func (s *userFileStore) deleteTree(ctx context.Context, root string) error {
	if _, err := os.Lstat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.Type().IsRegular() {
			if secErr := SecureDeleteFile(path); secErr != nil {
				s.logger.Warn().Err(secErr).Str("func", "userFileStore.deleteTree").Str("path", path).Msg("secure overwrite failed")
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	if err = os.RemoveAll(root); err != nil {
		return fmt.Errorf("remove %s: %w", root, err)
	}
	return nil
}

// SecureDeleteFile overwrites the file with zeros and then with random bytes,
// syncing after each pass, and unlinks it. When an overwrite pass fails the
// file is still unlinked and the overwrite error is returned.
func SecureDeleteFile(path string) error {
	overwriteErr := overwriteFile(path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(overwriteErr, fmt.Errorf("remove %s: %w", path, err))
	}
	return overwriteErr
}

func overwriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	for _, src := range []io.Reader{zeroReader{}, rand.Reader} {
		if _, err = f.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("seek %s: %w", path, err)
		}
		buf := make([]byte, overwriteBufBytes)
		if _, err = io.CopyBuffer(f, io.LimitReader(src, info.Size()), buf); err != nil {
			return fmt.Errorf("overwrite %s: %w", path, err)
		}
		if err = f.Sync(); err != nil {
			return fmt.Errorf("sync %s: %w", path, err)
		}
	}

	return nil
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func validUserID(userID string) bool {
	if userID == "" || userID == "." || userID == ".." {
		return false
	}
	return !strings.ContainsAny(userID, `/\`)
}
