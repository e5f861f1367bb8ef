package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-api/internal/api/dto"
	"github.com/spec-kit/portfolio-api/internal/observability"
	"github.com/spec-kit/portfolio-api/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts panics and escaped errors into the
// uniform failure envelope. Internal detail is logged, never returned.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.NewInternalError("An error occurred. Please try again.", nil)
			}
			if err != nil {
				status := fiber.StatusInternalServerError
				message := "An error occurred. Please try again."
				if de, ok := util.AsDomainError(err); ok {
					status = de.HTTPStatus
					message = de.Message
					metrics.RecordError(c.Path(), c.Method(), de.Code)
				} else {
					metrics.RecordError(c.Path(), c.Method(), "INTERNAL_ERROR")
				}
				if status >= fiber.StatusInternalServerError {
					logger.Error("request failed", zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(dto.Fail(message))
				err = nil
			}
		}()
		return c.Next()
	}
}
