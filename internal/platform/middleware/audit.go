package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eidefo/eidefo/internal/platform/auth"
)

// AuditEntry represents an audit log entry produced by the middleware.
// It captures who accessed which evaluation session, when, from where, and
// the action type.
type AuditEntry struct {
	Professional string
	Profession   string
	Institution  string
	SessionID    string
	Action       string // read, create, update, delete
	IPAddress    string
	UserAgent    string
	Path         string
	Method       string
	Timestamp    time.Time
	RequestID    string
	StatusCode   int
}

// AuditRecorder is the interface that the audit middleware uses to persist
// audit entries. This decouples the middleware from any concrete sink so
// that tests can provide a mock implementation.
type AuditRecorder interface {
	RecordAccess(entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(entry AuditEntry) error {
	return f(entry)
}

// Audit returns Echo middleware that intercepts requests to /api/*, extracts
// the authenticated professional from the request context, and logs every
// access to evaluation data. Clinical evaluations carry patient identifiers,
// so each access leaves a trail of who touched which session.
//
// If no AuditRecorder is provided, it falls back to structured zerolog logging.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path

			if !isAuditablePath(path) {
				return next(c)
			}

			// Execute the handler first so we capture the response status
			// and the identity the auth middleware placed on the request.
			err := next(c)

			ctx := c.Request().Context()
			entry := AuditEntry{
				Timestamp:    time.Now().UTC(),
				Path:         path,
				Method:       req.Method,
				IPAddress:    c.RealIP(),
				UserAgent:    req.UserAgent(),
				StatusCode:   c.Response().Status,
				Professional: auth.ProfessionalFromContext(ctx),
				Profession:   auth.ProfessionFromContext(ctx),
				Institution:  auth.InstitutionFromContext(ctx),
				Action:       httpMethodToAction(req.Method),
				SessionID:    extractSessionID(path),
			}

			if rid, ok := c.Get("request_id").(string); ok {
				entry.RequestID = rid
			}

			if len(recorders) > 0 && recorders[0] != nil {
				if recErr := recorders[0].RecordAccess(entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			// Always emit a structured log for the audit trail
			logger.Info().
				Str("type", "clinical_audit").
				Str("request_id", entry.RequestID).
				Str("professional", entry.Professional).
				Str("profession", entry.Profession).
				Str("institution", entry.Institution).
				Str("session_id", entry.SessionID).
				Str("action", entry.Action).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Str("remote_ip", entry.IPAddress).
				Int("status", entry.StatusCode).
				Msg("record_access")

			return err
		}
	}
}

// isAuditablePath returns true if the path is under /api/.
func isAuditablePath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// httpMethodToAction maps HTTP methods to audit action codes.
func httpMethodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead:
		return "read"
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

// extractSessionID finds the session identifier in /api/sessions/<id>/... paths.
func extractSessionID(path string) string {
	if !strings.HasPrefix(path, "/api/sessions/") {
		return ""
	}
	segments := strings.Split(strings.TrimPrefix(path, "/api/sessions/"), "/")
	if len(segments) > 0 && isUUIDLike(segments[0]) {
		return segments[0]
	}
	return ""
}

// isUUIDLike checks if a string parses as a UUID.
func isUUIDLike(s string) bool {
	if len(s) < 1 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
