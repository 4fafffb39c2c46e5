package domain

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"kgeyst.com/xposter/pkg/common"
)

// PostRequest is what to post. Empty fields fall back to the configured defaults.
type PostRequest struct {
	ImagePath string
	Caption   string
}

// PostService posts a captioned image to the API and reports the outcome line by line to the console.
// Every failure is collapsed into a single diagnostic line; nothing is retried.
type PostService struct {
	imageStore      ImageStore
	poster          Poster
	urlFinder       URLFinder
	logger          common.Logger
	apiURL          string
	imagePath       string
	caption         string
	mimeType        string
	statusURLFormat string
}

func NewPostService(
	imageStore ImageStore,
	poster Poster,
	urlFinder URLFinder,
	config *common.Config,
	logger common.Logger,
) *PostService {
	return &PostService{
		imageStore:      imageStore,
		poster:          poster,
		urlFinder:       urlFinder,
		logger:          logger,
		apiURL:          config.GetStringOrDefault(ConfigKeyAPIURL, DefaultAPIURL),
		imagePath:       config.GetStringOrDefault(ConfigKeyImagePath, DefaultImagePath),
		caption:         config.GetStringOrDefault(ConfigKeyCaption, DefaultCaption),
		mimeType:        config.GetStringOrDefault(ConfigKeyImageMIMEType, DefaultImageMIMEType),
		statusURLFormat: config.GetStringOrDefault(ConfigKeyStatusURLFormat, DefaultStatusURLFormat),
	}
}

// Post runs the whole sequence once: check the image, encode it, submit, print the response.
func (p *PostService) Post(ctx context.Context, out io.Writer, request PostRequest) *Result {
	imagePath := request.ImagePath
	if imagePath == "" {
		imagePath = p.imagePath
	}
	caption := request.Caption
	if caption == "" {
		caption = p.caption
	}
	result := &Result{RequestID: uuid.NewString()}
	isRemote := p.urlFinder.IsURL(imagePath)
	if !isRemote && !p.imageStore.Exists(imagePath) {
		printFailure(out, "Error: Image not found at %s", imagePath)
		result.Outcome = OutcomeImageNotFound
		result.Err = fmt.Errorf("%w: %s", ErrImageNotFound, imagePath)
		return result
	}
	image := imagePath
	if !isRemote {
		var err error
		image, err = p.encodeImage(imagePath)
		if err != nil {
			return p.fail(out, result, err)
		}
	}
	post := &Post{
		Text:      caption,
		Image:     image,
		RequestID: result.RequestID,
	}
	printLine(out, "Sending request...")
	response, err := p.poster.Submit(ctx, p.apiURL, post)
	if err != nil {
		return p.fail(out, result, err)
	}
	result.StatusCode = response.StatusCode
	if response.StatusCode != http.StatusOK {
		printFailure(out, "Failed with status %d", response.StatusCode)
		printLine(out, "%s", response.Body)
		result.Outcome = OutcomeRejected
		return result
	}
	printSuccess(out, "Success!")
	if !gjson.ValidBytes(response.Body) {
		return p.fail(out, result, ErrInvalidJSON)
	}
	_, _ = out.Write(pretty.Pretty(response.Body))
	result.Outcome = OutcomePosted
	postID, ok := ExtractPostID(response.Body)
	if !ok {
		p.logger.Log(fmt.Sprintf("request %s: no post id at %q in the response", result.RequestID, postIDPath))
		return result
	}
	result.PostID = postID
	result.StatusURL = StatusURL(p.statusURLFormat, postID)
	printLine(out, "TWEET_URL: %s", result.StatusURL)
	return result
}

func (p *PostService) encodeImage(imagePath string) (string, error) {
	t := time.Now()
	data, err := p.imageStore.Read(imagePath)
	if err != nil {
		return "", err
	}
	mimeType := p.mimeType
	if mimeType == MIMETypeAuto {
		mimeType = p.imageStore.DetectMIMEType(data)
	}
	if !common.IsImageFormat(imagePath) {
		p.logger.Log(fmt.Sprintf("%s doesn't have an image extension, posting it as %s anyway", imagePath, mimeType))
	}
	dataURI := EncodeDataURI(mimeType, data)
	p.logger.Log(fmt.Sprintf("encoded %s (%d bytes, %s) in %d ms", imagePath, len(data), mimeType, time.Since(t).Milliseconds()))
	return dataURI, nil
}

func (p *PostService) fail(out io.Writer, result *Result, err error) *Result {
	printFailure(out, "An error occurred: %s", err.Error())
	p.logger.Log(fmt.Sprintf("request %s failed: %s", result.RequestID, err.Error()))
	result.Outcome = OutcomeFailed
	result.Err = err
	return result
}
