package retriever

import "context"

// Retriever keeps the agent's conversation memory: a windowed
// short-term store per session, with optional long-term recall once a
// session is flushed.
type Retriever interface {
	AddShortTerm(ctx context.Context, sessionId string, role string, parts []Part) error
	ListShortTerm(ctx context.Context, sessionId string, opts ...ListShortTermOption) ([]Message, error)
	FlushToLongTerm(ctx context.Context, sessionId string) error
	SearchLongTerm(ctx context.Context, query string, opts ...SearchLongTermOption) ([]Message, error)
}
