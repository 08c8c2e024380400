// Package lazy defers construction of dependencies until first use, so
// containers can wire components without instantiating unused ones.
package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	// IfLoaded runs f only when a value was constructed successfully,
	// which makes teardown of untouched dependencies a no-op.
	IfLoaded(f func(T))
}

type loader[T any] struct {
	provide func() (T, error)
	once    sync.Once
	loaded  bool
	value   T
	err     error
}

func New[T any](provide func() (T, error)) Loader[T] {
	return &loader[T]{provide: provide}
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	l.once.Do(func() {
		value, err := l.provide()
		if err != nil {
			l.err = fmt.Errorf("load value of %T: %w", l.value, err)
			return
		}

		l.value = value
		l.loaded = true
	})

	return l.value, l.err
}

func (l *loader[T]) IfLoaded(f func(T)) {
	if l.loaded {
		f(l.value)
	}
}
