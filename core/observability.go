package core

import (
	"context"
	"sort"
	"strings"
)

func (x *CredentialExchange) logInfo(ctx context.Context, message string, fields map[string]any) {
	x.logWithLevel(ctx, "info", message, fields)
}

func (x *CredentialExchange) logError(ctx context.Context, message string, fields map[string]any) {
	x.logWithLevel(ctx, "error", message, fields)
}

func (x *CredentialExchange) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if x == nil || x.logger == nil {
		return
	}
	contextFields := cloneFields(fields)
	if x.attemptID != "" {
		contextFields["attempt_id"] = x.attemptID
	}

	logger := x.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(contextFields))
	}
	args := flattenFields(contextFields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	case "warn":
		logger.Warn(message, args...)
	case "debug":
		logger.Debug(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func cloneFields(fields map[string]any) map[string]any {
	cloned := make(map[string]any, len(fields))
	for key, value := range fields {
		cloned[key] = value
	}
	return cloned
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(fields)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
