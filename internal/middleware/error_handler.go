package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"prsnl_web/internal/tools"
	"prsnl_web/web/templates/pages"
	"prsnl_web/web/templates/shared"
)

// NewErrorHandler creates a custom error handler for Echo. API routes get a
// JSON body; everything else gets the error page.
func NewErrorHandler(resolver *tools.Resolver, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, errorTitle, errorMessage := describeError(err)

		if code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Request().URL.Path), zap.Error(err))
		} else {
			logger.Debug("request rejected", zap.String("path", c.Request().URL.Path), zap.Int("status", code), zap.Error(err))
		}

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
				logger.Error("failed to write error response", zap.Error(jsonErr))
			}
			return
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		backLink, backText := "/", "Back to home"
		if strings.HasPrefix(c.Request().URL.Path, tools.SectionPath+"/") {
			backLink, backText = tools.SectionPath, "Browse all tools"
		}

		props := pages.ErrorPageProps{
			Title: errorTitle,
			Breadcrumbs: []shared.Breadcrumb{
				{Title: tools.HomeLabel, URL: tools.HomePath},
				{Title: "Error", Active: true},
			},
			Nav:          shared.Sidebar(resolver.Catalog(), ""),
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
			BackLink:     backLink,
			BackText:     backText,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			logger.Error("failed to render error page", zap.Error(renderErr))
		}
	}
}

func describeError(err error) (code int, title, message string) {
	code = http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" && msg != http.StatusText(code) && code < http.StatusInternalServerError {
			message = msg
		}
	}

	switch code {
	case http.StatusNotFound:
		title = "Page Not Found"
		if message == "" {
			message = "The page you're looking for doesn't exist."
		}
	case http.StatusMethodNotAllowed:
		title = "Method Not Allowed"
		if message == "" {
			message = "This page does not support that request."
		}
	case http.StatusBadRequest:
		title = "Bad Request"
		if message == "" {
			message = "The request could not be processed."
		}
	default:
		title = http.StatusText(code)
		if title == "" || code >= http.StatusInternalServerError {
			title = "Internal Server Error"
		}
		if message == "" {
			message = "Something went wrong. Please try again later."
		}
	}
	return code, title, message
}
