package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prsnl_web/internal/models"
	"prsnl_web/internal/tools"
)

// ErrRedirectNotFound is returned when no redirect exists for a path
var ErrRedirectNotFound = errors.New("redirect not found")

// RedirectStore reads and writes persistent URL redirects
type RedirectStore struct {
	db *gorm.DB
}

// NewRedirectStore creates a redirect store on db
func NewRedirectStore(db *gorm.DB) *RedirectStore {
	return &RedirectStore{db: db}
}

// Find returns the active redirect registered for path
func (s *RedirectStore) Find(ctx context.Context, path string) (*models.URLRedirect, error) {
	var redirect models.URLRedirect
	err := s.db.WithContext(ctx).
		Where("old_path = ? AND active = ?", NormalizePath(path), true).
		First(&redirect).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRedirectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find redirect for %s: %w", path, err)
	}
	return &redirect, nil
}

// RecordHit increments the hit counter of a redirect and stamps its last use
func (s *RedirectStore) RecordHit(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).
		Model(&models.URLRedirect{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"hits":      gorm.Expr("hits + ?", 1),
			"last_used": time.Now(),
		}).Error
}

// Deactivate stops serving the redirect for path without deleting it
func (s *RedirectStore) Deactivate(ctx context.Context, path string) error {
	res := s.db.WithContext(ctx).
		Model(&models.URLRedirect{}).
		Where("old_path = ?", NormalizePath(path)).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate redirect for %s: %w", path, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRedirectNotFound
	}
	return nil
}

// Upsert creates a redirect or updates the target of an existing one.
// Upserted redirects are always active.
func (s *RedirectStore) Upsert(ctx context.Context, redirect *models.URLRedirect) error {
	redirect.OldPath = NormalizePath(redirect.OldPath)
	redirect.Active = true
	if redirect.StatusCode == 0 {
		redirect.StatusCode = http.StatusMovedPermanently
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "old_path"}},
		DoUpdates: clause.AssignmentColumns([]string{"new_path", "status_code", "active", "updated_at"}),
	}).Create(redirect).Error
}

// NormalizePath strips a trailing slash so /timeline/ and /timeline match
func NormalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}

// StaticRedirects lists the redirects from retired top-level pages: every
// tool's legacy path plus the settings pages that moved under /s.
func StaticRedirects(catalog *tools.Catalog) []models.URLRedirect {
	var redirects []models.URLRedirect
	for _, tool := range catalog.Tools() {
		if tool.Config.LegacyPath == "" {
			continue
		}
		redirects = append(redirects, models.URLRedirect{
			OldPath:    tool.Config.LegacyPath,
			NewPath:    tools.ToolPath(tool.Slug),
			StatusCode: http.StatusMovedPermanently,
			Active:     true,
		})
	}

	for _, r := range [][2]string{
		{"/import", "/s/import"},
		{"/import/v1", "/s/import?v=v1"},
		{"/import/v2", "/s/import?v=v2"},
		{"/settings", "/s/settings"},
		{"/docs", "/s/docs"},
	} {
		redirects = append(redirects, models.URLRedirect{
			OldPath:    r[0],
			NewPath:    r[1],
			StatusCode: http.StatusMovedPermanently,
			Active:     true,
		})
	}
	return redirects
}
