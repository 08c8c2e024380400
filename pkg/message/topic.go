package message

import (
	"fmt"

	pkgstrings "github.com/parkplatztransform/parkapi/pkg/strings"
)

type (
	Topic          string
	SubscriberName string
)

func NewSubscriberName(name string) SubscriberName {
	return SubscriberName(pkgstrings.ToKebabCase(name))
}

func NewSubscriberServiceName(name string) SubscriberName {
	return NewSubscriberName(fmt.Sprintf("%s-service", name))
}
