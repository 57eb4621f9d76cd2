package postgres

import (
	"context"

	"github.com/auditmind/agent/embedder"
	"github.com/auditmind/agent/retriever"
)

type embedderKey struct{}

func WithEmbedder(e embedder.Embedder) retriever.Option {
	return func(o *retriever.Options) {
		o.Context = context.WithValue(o.Context, embedderKey{}, e)
	}
}

func EmbedderFrom(ctx context.Context) (embedder.Embedder, bool) {
	e, ok := ctx.Value(embedderKey{}).(embedder.Embedder)
	return e, ok
}
