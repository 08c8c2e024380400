package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

func MustRunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) {
	err := RunHub(ctx, logger, process, processes...)
	if err != nil {
		panic(fmt.Errorf("process completed with error: %w", err))
	}
}

// RunHub runs the processes until the first of them completes or fails,
// then cancels the rest and waits for them to finish.
func RunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) error {
	errProcessCompleted := errors.New("process completed")
	loggingWrapper := func(process ErrorJob) ErrorJob {
		return func(ctx context.Context) error {
			err := process(ctx)
			if err == nil || errors.Is(err, ctx.Err()) {
				return errProcessCompleted
			}

			logger.WithError(err).Error(ctx, "process completed with error")
			return err
		}
	}

	processGroup := NewFailFastGroup(ctx)
	processGroup.Do(loggingWrapper(process))
	for _, process := range processes {
		processGroup.Do(loggingWrapper(process))
	}

	err := processGroup.Wait()
	if errors.Is(err, errProcessCompleted) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
