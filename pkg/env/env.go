package env

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgstrings "github.com/parkplatztransform/parkapi/pkg/strings"
)

type supportedTypes interface {
	bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

func Parse[T supportedTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return v, nil
}

func ParseOptional[T supportedTypes](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseList[T supportedTypes](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("env %s not found", key)
	}

	items := strings.Split(str, delimiter)
	result := make([]T, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list value: %w", key, err)
		}
		result = append(result, v)
	}

	return result, nil
}
