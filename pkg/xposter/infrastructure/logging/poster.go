package logging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/domain"
)

type posterDecorator struct {
	wrappedPoster domain.Poster
	logger        common.Logger
}

func NewPosterDecorator(wrappedPoster domain.Poster, logger common.Logger) domain.Poster {
	return &posterDecorator{
		wrappedPoster: wrappedPoster,
		logger:        logger,
	}
}

func (p *posterDecorator) Submit(ctx context.Context, apiURL string, post *domain.Post) (*domain.Response, error) {
	p.logger.Log(fmt.Sprintf("request %s: POST %s (text: %q, image: %s)", post.RequestID, apiURL, post.Text, describeImage(post.Image)))
	t := time.Now()
	response, err := p.wrappedPoster.Submit(ctx, apiURL, post)
	if err != nil {
		p.logger.Log(fmt.Sprintf("request %s: transport error after %d ms: %s", post.RequestID, time.Since(t).Milliseconds(), err.Error()))
		return nil, err
	}
	p.logger.Log(fmt.Sprintf("request %s: status %d, %d bytes (took %d ms)", post.RequestID, response.StatusCode, len(response.Body), time.Since(t).Milliseconds()))
	return response, nil
}

// The data URI can be megabytes long, so only its size goes to the log.
func describeImage(image string) string {
	if strings.HasPrefix(image, "data:") {
		return fmt.Sprintf("data URI, %d chars", len(image))
	}
	return image
}
