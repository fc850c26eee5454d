package logging_test

import (
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/logging"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	dev := logging.New("development")
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod := logging.New("production")
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
}
