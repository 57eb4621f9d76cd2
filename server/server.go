package server

import "context"

type Server interface {
	Address() string
	Start() error
	Stop(ctx context.Context) error
}
