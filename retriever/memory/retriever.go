// Package memory is the default in-process retriever. Short-term
// history is a windowed slice per session; there is no long-term store,
// so flushing simply drops the session and searches come back empty.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/auditmind/agent/retriever"
)

type memoryRetriever struct {
	options   retriever.Options
	shortTerm map[string][]retriever.Message
	mtx       sync.RWMutex
}

func (r *memoryRetriever) AddShortTerm(_ context.Context, sessionId string, role string, parts []retriever.Part) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	record := retriever.Message{
		Id:        uuid.NewString(),
		SessionId: sessionId,
		Role:      role,
		Parts:     parts,
	}

	r.shortTerm[sessionId] = append(r.shortTerm[sessionId], record)

	if len(r.shortTerm[sessionId]) > r.options.ShortTermMemorySize {
		r.shortTerm[sessionId] = r.shortTerm[sessionId][len(r.shortTerm[sessionId])-r.options.ShortTermMemorySize:]
	}

	return nil
}

func (r *memoryRetriever) ListShortTerm(_ context.Context, sessionId string, opts ...retriever.ListShortTermOption) ([]retriever.Message, error) {
	options := retriever.NewListShortTermOptions(opts...)

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	msgs := r.shortTerm[sessionId]
	if options.Limit > 0 && len(msgs) > options.Limit {
		msgs = msgs[len(msgs)-options.Limit:]
	}

	cpy := make([]retriever.Message, len(msgs))
	copy(cpy, msgs)

	return cpy, nil
}

func (r *memoryRetriever) FlushToLongTerm(_ context.Context, sessionId string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.shortTerm, sessionId)

	return nil
}

func (r *memoryRetriever) SearchLongTerm(_ context.Context, _ string, _ ...retriever.SearchLongTermOption) ([]retriever.Message, error) {
	return nil, nil
}

func NewRetriever(opts ...retriever.Option) retriever.Retriever {
	return &memoryRetriever{
		options:   retriever.NewOptions(opts...),
		shortTerm: map[string][]retriever.Message{},
		mtx:       sync.RWMutex{},
	}
}
