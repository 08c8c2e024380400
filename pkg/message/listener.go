package message

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/parkplatztransform/parkapi/pkg/log"
	"github.com/parkplatztransform/parkapi/pkg/worker"
)

type (
	listener struct {
		consumer        Consumer
		handler         Handler
		newHandlerRetry func() backoff.BackOff
		handlerPool     worker.Pool
		logger          log.Logger
	}

	ListenerOption func(*listener)
)

// WithHandlerRetry overrides the retry policy. The factory is called once per
// message so concurrent handlers do not share backoff state.
func WithHandlerRetry(newRetry func() backoff.BackOff) ListenerOption {
	return func(l *listener) {
		l.newHandlerRetry = newRetry
	}
}

// WithConcurrentHandlers allows up to maxWorkers messages to be handled at
// once. The default of one preserves consumption order.
func WithConcurrentHandlers(maxWorkers int) ListenerOption {
	return func(l *listener) {
		l.handlerPool = worker.NewPool(maxWorkers)
	}
}

func NewListener(
	consumer Consumer,
	handler Handler,
	logger log.Logger,
	opts ...ListenerOption,
) worker.ErrorJob {
	defaultHandlerRetry := func() backoff.BackOff {
		return backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(100*time.Millisecond),
			backoff.WithMultiplier(2),
			backoff.WithMaxInterval(5*time.Minute),
			backoff.WithMaxElapsedTime(0),
		)
	}

	impl := &listener{
		consumer:        consumer,
		handler:         wrapWithPanicHandler(handler),
		newHandlerRetry: defaultHandlerRetry,
		handlerPool:     worker.NewPool(1),
		logger:          logger,
	}
	for _, opt := range opts {
		opt(impl)
	}

	return impl.consumerWorker
}

func (l *listener) consumerWorker(ctx context.Context) error {
	err := func() error {
		for {
			select {
			case msg, ok := <-l.consumer.Messages():
				if !ok {
					return errors.New("consumer closed messages channel")
				}
				l.handlerPool.Do(func() {
					l.processMessage(ctx, msg)
				})
			case <-ctx.Done():
				l.handlerPool.Wait()
				l.consumer.Close()
				return nil
			}
		}
	}()
	if err != nil {
		return fmt.Errorf("message listener %s: %w", l.consumer.Name(), err)
	}

	return nil
}

func (l *listener) processMessage(ctx context.Context, msg *ConsumerMessage) {
	err := backoff.Retry(func() error {
		select {
		case <-ctx.Done():
			return backoff.Permanent(ctx.Err())
		default:
		}

		err := l.handler(ctx, &msg.Message)
		if err != nil {
			l.logger.
				WithField("messageID", msg.Message.ID).
				WithError(err).
				Warn(ctx, "message handled with error, will be retried")
		}
		return err
	}, l.newHandlerRetry())
	if err != nil {
		l.consumer.Nack(msg)
		return
	}

	l.consumer.Ack(msg)
}

func wrapWithPanicHandler(handler Handler) Handler {
	return func(ctx context.Context, msg *Message) (err error) {
		recoverPanic := func() {
			panicMsg := recover()
			if panicMsg == nil {
				return
			}

			err = fmt.Errorf("message handled with panic: %v, stacktrace: %s", panicMsg, debug.Stack())
		}

		defer recoverPanic()
		return handler(ctx, msg)
	}
}
