package requestcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))

	generated := GetRequestID(WithRequestID(context.Background(), ""))
	assert.Len(t, generated, 36)

	assert.Empty(t, GetRequestID(context.Background()))
}

func TestServiceName(t *testing.T) {
	ctx := WithServiceName(context.Background(), "ticketing")
	assert.Equal(t, "ticketing", GetServiceName(ctx))
	assert.Empty(t, GetServiceName(context.Background()))
}
