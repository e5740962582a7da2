package contextutil_test

import (
	"context"
	"testing"

	"go-integration/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestAndUserID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithTenantID(ctx, "tenant-1")

	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "user-1", contextutil.GetUserID(ctx))
	assert.Equal(t, "tenant-1", contextutil.GetTenantID(ctx))
	assert.Equal(t, "", contextutil.GetTenantID(context.Background()))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop().Named("fallback")
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))

	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
