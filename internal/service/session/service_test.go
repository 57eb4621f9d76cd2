package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditmind/agent/retriever/memory"
)

func TestCreateSession(t *testing.T) {
	svc := New(memory.NewRetriever())
	ctx := context.Background()

	s1, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, s1.ID())

	// fixed ids are honored and idempotent
	s2, err := svc.CreateSession(ctx, "audit-session")
	require.NoError(t, err)
	assert.Equal(t, "audit-session", s2.ID())

	s3, err := svc.CreateSession(ctx, "audit-session")
	require.NoError(t, err)
	assert.Same(t, s2, s3)

	assert.Len(t, svc.ListSessionIds(ctx), 2)
}

func TestGetAndDelete(t *testing.T) {
	svc := New(memory.NewRetriever())
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "nope")
	assert.Error(t, err)

	s, err := svc.CreateSession(ctx, "keep")
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, "keep")
	require.NoError(t, err)
	assert.Same(t, s, got)

	svc.DeleteSession(ctx, "keep")
	_, err = svc.GetSession(ctx, "keep")
	assert.Error(t, err)
}
