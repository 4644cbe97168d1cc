package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, service string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", service),
	}
}

// ===== OPERATION LOGGING =====

// LogOperation records the outcome of one mutating operation. Expected
// refusals log at warn or info, anything else at error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation, userID, resourceID, resourceType string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	var permErr *PermissionError
	switch {
	case err == nil:
	case errors.As(err, &permErr):
		level, status = slog.LevelWarn, "forbidden"
	case IsUnauthorized(err):
		level, status = slog.LevelWarn, "unauthorized"
	case IsBadRequest(err):
		level, status = slog.LevelWarn, "bad_request"
	case IsNotFound(err):
		level, status = slog.LevelInfo, "not_found"
	default:
		level, status = slog.LevelError, "error"
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("resource_id", resourceID),
		slog.String("resource_type", resourceType),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		if permErr != nil {
			attrs = append(attrs,
				slog.String("permission_action", permErr.Action),
				slog.String("reason", permErr.Reason))
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}
