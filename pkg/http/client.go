package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

type (
	Destination string

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithClientBasicAuth(username, password string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetBasicAuth(username, password)
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			fieldsLogger := logger.With(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"responseCode":          resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				fieldsLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				fieldsLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f *ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return f.httpClient(opts...)
}

func (f *ClientFactory) httpClient(extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
