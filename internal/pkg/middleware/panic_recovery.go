package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
)

// PanicRecoveryWithZapMiddleware recovers panics raised by handlers, logs
// them with a stack trace, reports them to New Relic and answers 500
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	stackTrace := string(debug.Stack())
	method := c.Request().Method
	path := c.Request().URL.Path

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	subject := "anonymous"
	if id, ok := PassengerID(c); ok {
		subject = id
	}

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("client_ip", c.RealIP()),
		logger.String("subject", subject),
		logger.String("request_id", requestID),
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": method,
				"http.path":   path,
				"request_id":  requestID,
			},
		})
		zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)
	} else {
		zapLogger.Error("Panic recovered during request processing", fields...)
	}

	if c.Response().Committed {
		return nil
	}
	return utils.CodedErrorResponse(c, http.StatusInternalServerError, constants.ErrCodeInternal, "Internal server error")
}
