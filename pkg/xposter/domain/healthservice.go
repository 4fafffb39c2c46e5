package domain

import (
	"context"
	"errors"
	"io"

	"kgeyst.com/xposter/pkg/common"
)

var errNoHealthURL = errors.New("no health URL configured")

// HealthService checks whether the posting API is up.
type HealthService struct {
	probe     HealthProbe
	healthURL string
}

func NewHealthService(probe HealthProbe, config *common.Config) *HealthService {
	return &HealthService{
		probe:     probe,
		healthURL: HealthURLFromConfig(config),
	}
}

// Check prints the status code and the raw body of the health endpoint, or the error if it's unreachable.
func (h *HealthService) Check(ctx context.Context, out io.Writer) (*Response, error) {
	if h.healthURL == "" {
		printFailure(out, "Error: %s", errNoHealthURL.Error())
		return nil, errNoHealthURL
	}
	response, err := h.probe.Probe(ctx, h.healthURL)
	if err != nil {
		printFailure(out, "Error: %s", err.Error())
		return nil, err
	}
	printLine(out, "Status: %d", response.StatusCode)
	printLine(out, "Body: %s", response.Body)
	return response, nil
}
