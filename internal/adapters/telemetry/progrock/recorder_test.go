package progrock_test

import (
	"context"
	"testing"

	"github.com/lanternmc/lantern/internal/adapters/telemetry/progrock"
	"github.com/lanternmc/lantern/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecord_AttachesVertexToContext(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck // Best effort close in defer

	ctx, vertex := recorder.Record(context.Background(), "libraries/asm-9.6.jar")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, vertex, fromCtx)

	vertex.Complete(nil)
}
