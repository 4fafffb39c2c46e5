package api

import (
	"context"
	"io"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/domain"
	"kgeyst.com/xposter/pkg/xposter/infrastructure/filesystem"
	infrahttp "kgeyst.com/xposter/pkg/xposter/infrastructure/http"
	"kgeyst.com/xposter/pkg/xposter/infrastructure/logging"
	"kgeyst.com/xposter/pkg/xposter/infrastructure/web"
)

type api struct {
	postService   *domain.PostService
	healthService *domain.HealthService
}

// See domain/config.go
const (
	ConfigKeyImagePath       = domain.ConfigKeyImagePath
	ConfigKeyAPIURL          = domain.ConfigKeyAPIURL
	ConfigKeyCaption         = domain.ConfigKeyCaption
	ConfigKeyImageMIMEType   = domain.ConfigKeyImageMIMEType
	ConfigKeyHealthURL       = domain.ConfigKeyHealthURL
	ConfigKeyStatusURLFormat = domain.ConfigKeyStatusURLFormat
	ConfigKeyRequestTimeout  = domain.ConfigKeyRequestTimeout
	ConfigKeyLogPath         = domain.ConfigKeyLogPath

	DefaultLogPath = domain.DefaultLogPath
)

type (
	PostRequest = domain.PostRequest
	Result      = domain.Result
	Outcome     = domain.Outcome
)

const (
	OutcomeFailed        = domain.OutcomeFailed
	OutcomeImageNotFound = domain.OutcomeImageNotFound
	OutcomeRejected      = domain.OutcomeRejected
	OutcomePosted        = domain.OutcomePosted
)

// API is the entrypoint to the poster. It shouldn't contain any logic of its own; it glues all the components together.
// It can be used from a one-shot CLI, an interactive console, an IRC bot etc.
type API interface {
	// Post sends the image with the caption to the posting API and reports the outcome line by line to `out`.
	// Empty fields of `request` fall back to the configured image path and caption. It never fails as such:
	// problems are reported to `out` and summarized in the returned Result.
	Post(ctx context.Context, out io.Writer, request PostRequest) *Result
	// CheckHealth prints the status and the body of the API's health endpoint to `out`.
	CheckHealth(ctx context.Context, out io.Writer) error
}

func NewAPI(config *common.Config) API {
	logger := common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, domain.DefaultLogPath))
	return NewAPIWithLogger(config, logger)
}

// NewAPIWithLogger is like NewAPI but with a custom logger instead of the log file.
func NewAPIWithLogger(config *common.Config, logger common.Logger) API {
	client := infrahttp.NewClient(config.GetDurationOrDefault(ConfigKeyRequestTimeout, 0), logger)
	return &api{
		postService: domain.NewPostService(
			filesystem.NewImageStore(),
			logging.NewPosterDecorator(client, logger),
			web.NewURLFinder(),
			config,
			logger,
		),
		healthService: domain.NewHealthService(client, config),
	}
}

func (a *api) Post(ctx context.Context, out io.Writer, request PostRequest) *Result {
	return a.postService.Post(ctx, out, request)
}

func (a *api) CheckHealth(ctx context.Context, out io.Writer) error {
	_, err := a.healthService.Check(ctx, out)
	return err
}
