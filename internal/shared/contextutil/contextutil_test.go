package contextutil_test

import (
	"context"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := context.Background()
	ctx = contextutil.WithRequestID(ctx, "rid-1")
	ctx = contextutil.WithActor(ctx, domain.Actor{UserID: "user-1", Name: "Alice", Role: domain.RoleHeadSetter})

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Equal(t, domain.RoleHeadSetter, md.Role)
	assert.Equal(t, "Alice", contextutil.GetActor(ctx).Name)
}

func TestGetActor_Missing(t *testing.T) {
	assert.Equal(t, domain.Actor{}, contextutil.GetActor(context.Background()))
}

func TestGetLogger(t *testing.T) {
	t.Run("context logger wins", func(t *testing.T) {
		l := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), l)

		assert.Same(t, l, contextutil.GetLogger(ctx, zap.NewNop()))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
