//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}

func WithinTransactionWithResult[T any](
	ctx context.Context,
	transaction Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := transaction.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	}, lockNames...)

	return result, err
}
