package worker

import (
	"runtime"
	"sync"
)

const (
	MaxWorkersCountNumCPU    = -1
	MaxWorkersCountUnlimited = 0
)

type SimpleJob func()

type Pool interface {
	Do(SimpleJob)
	Wait()
}

// pool limits concurrency with a semaphore channel, a nil channel means
// unlimited workers.
type pool struct {
	jobCompleted sync.WaitGroup
	workerSlots  chan struct{}
}

func NewPool(maxWorkers int) Pool {
	if maxWorkers <= MaxWorkersCountNumCPU {
		maxWorkers = runtime.NumCPU()
	}

	p := &pool{}
	if maxWorkers > MaxWorkersCountUnlimited {
		p.workerSlots = make(chan struct{}, maxWorkers)
	}
	return p
}

// Do runs the job in a goroutine, blocking until a worker slot is free.
func (p *pool) Do(job SimpleJob) {
	p.jobCompleted.Add(1)
	if p.workerSlots != nil {
		p.workerSlots <- struct{}{}
	}

	go func() {
		defer func() {
			if p.workerSlots != nil {
				<-p.workerSlots
			}
			p.jobCompleted.Done()
		}()

		job()
	}()
}

func (p *pool) Wait() {
	p.jobCompleted.Wait()
}
