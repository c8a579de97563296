package httpserver

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger creates a fiber middleware for request/response logging.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.Info("http request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		err := c.Next()
		duration := time.Since(start)

		if err != nil {
			logger.Error("http request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Duration("duration", duration),
				zap.Int("status", statusFromError(err)),
				zap.Error(err))
		} else {
			logger.Info("http request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Duration("duration", duration),
				zap.Int("status", c.Response().StatusCode()))
		}

		return err
	}
}

// Recover creates a fiber middleware that turns handler panics into plain
// internal-server errors instead of taking the process down.
func Recover(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("path", c.Path()),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				err = fiber.ErrInternalServerError
			}
		}()
		return c.Next()
	}
}

// newErrorHandler renders every handler error as a JSON envelope of the form
// {"error": {"code": ..., "message": ...}}.
func newErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.Int("status", code), zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    code,
				"message": message,
			},
		})
	}
}

func statusFromError(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
