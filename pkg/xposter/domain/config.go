package domain

import (
	"net/url"

	"github.com/caarlos0/env/v11"

	"kgeyst.com/xposter/pkg/common"
)

// A list of built-in config keys supported by the poster (front-end specific settings are not included).

const (
	// ConfigKeyImagePath the local image to post; an absolute http(s) URL is passed to the API as-is
	ConfigKeyImagePath = "imagePath"
	// ConfigKeyAPIURL where to POST the JSON payload
	ConfigKeyAPIURL = "apiURL"
	// ConfigKeyCaption the text of the post
	ConfigKeyCaption = "caption"
	// ConfigKeyImageMIMEType the MIME type declared in the data URI; "auto" detects it from the file content
	ConfigKeyImageMIMEType = "imageMIMEType"
	// ConfigKeyHealthURL where to GET the health status; derived from ConfigKeyAPIURL if empty
	ConfigKeyHealthURL = "healthURL"
	// ConfigKeyStatusURLFormat how to build a display URL out of a post identifier (one %s verb)
	ConfigKeyStatusURLFormat = "statusURLFormat"
	// ConfigKeyRequestTimeout request timeout in milliseconds; 0 means no timeout
	ConfigKeyRequestTimeout = "requestTimeout"
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
)

const (
	DefaultAPIURL          = "http://localhost:3001/api/posts/post"
	DefaultImagePath       = "image.jpeg"
	DefaultCaption         = "Saving Time Using Prompts"
	DefaultImageMIMEType   = "image/jpeg"
	DefaultStatusURLFormat = "https://x.com/i/web/status/%s"
	DefaultLogPath         = "log.txt"

	// MIMETypeAuto makes the poster sniff the MIME type from the image bytes.
	MIMETypeAuto = "auto"
)

type environment struct {
	ImagePath       string `env:"XPOST_IMAGE_PATH"`
	APIURL          string `env:"XPOST_API_URL"`
	Caption         string `env:"XPOST_CAPTION"`
	ImageMIMEType   string `env:"XPOST_IMAGE_MIME_TYPE"`
	HealthURL       string `env:"XPOST_HEALTH_URL"`
	StatusURLFormat string `env:"XPOST_STATUS_URL_FORMAT"`
	RequestTimeout  int    `env:"XPOST_REQUEST_TIMEOUT" envDefault:"-1"`
	LogPath         string `env:"XPOST_LOG_PATH"`
}

// ApplyEnvironment overrides config parameters with XPOST_* environment variables, if set.
func ApplyEnvironment(config *common.Config) error {
	var e environment
	if err := env.Parse(&e); err != nil {
		return err
	}
	setIfNotEmpty(config, ConfigKeyImagePath, e.ImagePath)
	setIfNotEmpty(config, ConfigKeyAPIURL, e.APIURL)
	setIfNotEmpty(config, ConfigKeyCaption, e.Caption)
	setIfNotEmpty(config, ConfigKeyImageMIMEType, e.ImageMIMEType)
	setIfNotEmpty(config, ConfigKeyHealthURL, e.HealthURL)
	setIfNotEmpty(config, ConfigKeyStatusURLFormat, e.StatusURLFormat)
	setIfNotEmpty(config, ConfigKeyLogPath, e.LogPath)
	if e.RequestTimeout >= 0 {
		config.Set(ConfigKeyRequestTimeout, e.RequestTimeout)
	}
	return nil
}

func setIfNotEmpty(config *common.Config, key, value string) {
	if value != "" {
		config.Set(key, value)
	}
}

// HealthURLFromConfig returns the configured health URL or, if there's none, "/health" on the API's host.
func HealthURLFromConfig(config *common.Config) string {
	healthURL := config.GetString(ConfigKeyHealthURL)
	if healthURL != "" {
		return healthURL
	}
	apiURL, err := url.Parse(config.GetStringOrDefault(ConfigKeyAPIURL, DefaultAPIURL))
	if err != nil || apiURL.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: apiURL.Scheme, Host: apiURL.Host, Path: "/health"}).String()
}
