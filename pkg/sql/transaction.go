package sql

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/parkplatztransform/parkapi/pkg/persistence"
)

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id       instanceID
	client   TxClient
	onCommit func()
}

func NewTransaction(client TxClient, instanceName string, onCommit func()) persistence.Transaction {
	return &transaction{id: instanceID(instanceName), client: client, onCommit: onCommit}
}

func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) error {
	var err error
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx.instanceID = t.id
		storedTx.ClientTx = tx
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if t.onCommit != nil {
		t.onCommit()
	}

	return nil
}

func withTransactionLevelLock(ctx context.Context, name string, tx ClientTx) error {
	lockID, err := getLockIDByName(name)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "select pg_advisory_xact_lock($1)", lockID)
	if err != nil {
		return fmt.Errorf("get lock for %s: %w", name, err)
	}

	return nil
}

func getLockIDByName(name string) (int64, error) {
	hash := fnv.New64a()
	_, err := hash.Write([]byte(name))
	if err != nil {
		return 0, fmt.Errorf("create hash for lock with name %s: %w", name, err)
	}

	return int64(hash.Sum64()), nil
}

// NewTransactionalClient returns a Client which runs queries within
// the transaction stored in the context when there is one.
func NewTransactionalClient(client Client) Client {
	return &transactionalClient{client}
}

type transactionalClient struct {
	client Client
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return c.client.ExecContext(ctx, query, args...)
}

func (c *transactionalClient) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.NamedExecContext(ctx, query, arg)
	}
	return c.client.NamedExecContext(ctx, query, arg)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return c.client.GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return c.client.SelectContext(ctx, dest, query, args...)
}
