package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"prsnl_web/internal/models"
	"prsnl_web/internal/services"
)

// RedirectFinder looks up persistent redirects
type RedirectFinder interface {
	Find(ctx context.Context, path string) (*models.URLRedirect, error)
	RecordHit(ctx context.Context, id uint) error
}

// LegacyRedirects turns 404s into redirects when the requested path has a
// stored redirect. A nil finder disables the lookup.
func LegacyRedirects(finder RedirectFinder, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil || finder == nil {
				return err
			}

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusNotFound {
				return err
			}
			method := c.Request().Method
			if method != http.MethodGet && method != http.MethodHead {
				return err
			}

			ctx := c.Request().Context()
			redirect, findErr := finder.Find(ctx, c.Request().URL.Path)
			if findErr != nil {
				if !errors.Is(findErr, services.ErrRedirectNotFound) {
					logger.Warn("redirect lookup failed", zap.String("path", c.Request().URL.Path), zap.Error(findErr))
				}
				return err
			}

			if hitErr := finder.RecordHit(ctx, redirect.ID); hitErr != nil {
				logger.Warn("failed to record redirect hit", zap.Uint("id", redirect.ID), zap.Error(hitErr))
			}

			code := redirect.StatusCode
			if code < http.StatusMultipleChoices || code > http.StatusPermanentRedirect {
				code = http.StatusMovedPermanently
			}
			return c.Redirect(code, redirect.NewPath)
		}
	}
}
