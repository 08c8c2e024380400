package stub

import (
	"context"

	"github.com/parkplatztransform/parkapi/pkg/persistence"
)

type transaction struct{}

func NewTransaction() persistence.Transaction {
	return transaction{}
}

func (s transaction) Execute(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}
