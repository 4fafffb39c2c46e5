package http

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/domain"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the posting API over HTTP. It implements both domain.Poster and domain.HealthProbe.
type Client struct {
	client *resty.Client
}

// NewClient creates a client with no retries. A zero `timeout` means no timeout at all.
func NewClient(timeout time.Duration, logger common.Logger) *Client {
	client := resty.New().
		SetRetryCount(0).
		SetLogger(newLoggerAdapter(logger))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{client: client}
}

func (c *Client) Submit(ctx context.Context, apiURL string, post *domain.Post) (*domain.Response, error) {
	request := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post)
	if post.RequestID != "" {
		request.SetHeader(requestIDHeader, post.RequestID)
	}
	response, err := request.Post(apiURL)
	if err != nil {
		return nil, err
	}
	return toDomainResponse(response), nil
}

func (c *Client) Probe(ctx context.Context, healthURL string) (*domain.Response, error) {
	response, err := c.client.R().
		SetContext(ctx).
		Execute(resty.MethodGet, healthURL)
	if err != nil {
		return nil, err
	}
	return toDomainResponse(response), nil
}

func toDomainResponse(response *resty.Response) *domain.Response {
	return &domain.Response{
		StatusCode: response.StatusCode(),
		Body:       response.Body(),
	}
}

// loggerAdapter routes resty's own diagnostics to our log file instead of stderr.
type loggerAdapter struct {
	logger common.Logger
}

func newLoggerAdapter(logger common.Logger) resty.Logger {
	return &loggerAdapter{logger: logger}
}

func (l *loggerAdapter) Errorf(format string, v ...interface{}) {
	l.logger.Log("resty error: " + fmt.Sprintf(format, v...))
}

func (l *loggerAdapter) Warnf(format string, v ...interface{}) {
	l.logger.Log("resty warning: " + fmt.Sprintf(format, v...))
}

func (l *loggerAdapter) Debugf(format string, v ...interface{}) {
	l.logger.Log("resty debug: " + fmt.Sprintf(format, v...))
}
