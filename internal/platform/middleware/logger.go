package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eidefo/eidefo/internal/platform/auth"
)

// Logger emits one structured line per request. The professional field fills
// in once the token middleware has run; unauthenticated probes log with an
// empty identity.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			res := c.Response()
			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("professional", auth.ProfessionalFromContext(c.Request().Context())).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}
