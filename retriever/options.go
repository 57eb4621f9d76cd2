package retriever

import "context"

type Option func(*Options)

type Options struct {
	Location            string
	ShortTermMemorySize int
	Context             context.Context
}

func WithLocation(location string) Option {
	return func(o *Options) {
		o.Location = location
	}
}

func WithShortTermMemorySize(size int) Option {
	return func(o *Options) {
		o.ShortTermMemorySize = size
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		ShortTermMemorySize: 50,
		Context:             context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type ListShortTermOption func(*ListShortTermOptions)

type ListShortTermOptions struct {
	Limit int
}

func WithShortTermLimit(limit int) ListShortTermOption {
	return func(o *ListShortTermOptions) {
		o.Limit = limit
	}
}

func NewListShortTermOptions(opts ...ListShortTermOption) ListShortTermOptions {
	options := ListShortTermOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type SearchLongTermOption func(*SearchLongTermOptions)

type SearchLongTermOptions struct {
	Limit int
}

func WithSearchLongTermLimit(limit int) SearchLongTermOption {
	return func(o *SearchLongTermOptions) {
		o.Limit = limit
	}
}

func NewSearchLongTermOptions(opts ...SearchLongTermOption) SearchLongTermOptions {
	options := SearchLongTermOptions{
		Limit: 8,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
