package repository

import "context"

// TxManager runs fn inside a transaction carried by ctx. Drivers without
// transactions run fn directly.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type noopTxManager struct{}

// NoopTxManager returns a TxManager that just calls fn
func NoopTxManager() TxManager {
	return noopTxManager{}
}

func (noopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
