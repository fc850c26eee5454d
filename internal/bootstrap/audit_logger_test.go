package bootstrap_test

import (
	"context"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewZapAuditLogger(zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "terminated", fields["signal"])
	assert.Contains(t, fields, "host")
	assert.Equal(t, "audit", entries[0].LoggerName)
}
