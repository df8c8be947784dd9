package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// parseDate parses a YYYY-MM-DD request field, mapping failures to the
// validation error class.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got %q", apperrors.ErrValidation, field, value)
	}
	return t, nil
}

// parseMonthField parses a YYYY-MM request field, mapping failures to the
// validation error class.
func parseMonthField(field, value string) (domain.Month, error) {
	m, err := domain.ParseMonth(value)
	if err != nil {
		return domain.Month{}, fmt.Errorf("%w: %s must be a YYYY-MM month, got %q", apperrors.ErrValidation, field, value)
	}
	return m, nil
}
