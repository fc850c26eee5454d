package bootstrap

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit events through the process logger, tagged
// with the host so events from several instances can be told apart.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	host, _ := os.Hostname()
	return &ZapAuditLogger{logger: logger.Named("audit").With(zap.String("host", host))}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+2)
	fields = append(fields, zap.String("action", entry.Action), zap.String("message", entry.Message))
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	l.logger.Info("audit event", fields...)
}
