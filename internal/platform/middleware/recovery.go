package middleware

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Recovery converts a handler panic into a 500 response and logs the stack,
// so one broken evaluation request cannot take the server down with it.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				stack := make([]byte, 8<<10)
				stack = stack[:runtime.Stack(stack, false)]

				rid, _ := c.Get("request_id").(string)
				logger.Error().
					Str("request_id", rid).
					Str("path", c.Request().URL.Path).
					Interface("panic", r).
					Bytes("stack", stack).
					Msg("panic recovered")

				err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}()
			return next(c)
		}
	}
}
