package http

import "context"

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	RouteName string
	Code      int
	Panic     *Panic
	Error     error
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}
