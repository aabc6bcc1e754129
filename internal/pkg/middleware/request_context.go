package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/requestcontext"
)

// RequestContextMiddleware stamps every request with a request id and the
// serving service name, and echoes the id back to the caller
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			ctx := requestcontext.WithRequestID(req.Context(), req.Header.Get(requestcontext.HeaderRequestID))
			ctx = requestcontext.WithServiceName(ctx, serviceName)
			c.SetRequest(req.WithContext(ctx))

			c.Response().Header().Set(requestcontext.HeaderRequestID, requestcontext.GetRequestID(ctx))
			return next(c)
		}
	}
}
