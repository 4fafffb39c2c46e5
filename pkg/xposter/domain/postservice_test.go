package domain

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/xposter/pkg/common"
)

type fakeImageStore struct {
	files   map[string][]byte
	readErr error
}

func (f *fakeImageStore) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeImageStore) Read(path string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.files[path], nil
}

func (f *fakeImageStore) DetectMIMEType([]byte) string {
	return "image/png"
}

type fakePoster struct {
	response *Response
	err      error
	posts    []*Post
	apiURLs  []string
}

func (f *fakePoster) Submit(_ context.Context, apiURL string, post *Post) (*Response, error) {
	f.posts = append(f.posts, post)
	f.apiURLs = append(f.apiURLs, apiURL)
	return f.response, f.err
}

type fakeURLFinder struct{}

func (fakeURLFinder) IsURL(str string) bool {
	return strings.HasPrefix(str, "https://")
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.messages = append(r.messages, message)
}

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02, 0x03}

func newTestPostService(poster *fakePoster, store *fakeImageStore, values map[string]any) (*PostService, *recordingLogger) {
	logger := &recordingLogger{}
	config := common.NewConfig(map[string]any{
		ConfigKeyImagePath: "photo.jpeg",
		ConfigKeyAPIURL:    "http://localhost:3001/api/posts/post",
		ConfigKeyCaption:   "Saving Time Using Prompts",
	})
	for key, value := range values {
		config.Set(key, value)
	}
	return NewPostService(store, poster, fakeURLFinder{}, config, logger), logger
}

func defaultStore() *fakeImageStore {
	return &fakeImageStore{files: map[string][]byte{"photo.jpeg": jpegBytes}}
}

func TestPostImageNotFound(t *testing.T) {
	poster := &fakePoster{}
	service, _ := newTestPostService(poster, &fakeImageStore{}, nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	assert.Equal(t, "Error: Image not found at photo.jpeg\n", out.String())
	assert.Equal(t, OutcomeImageNotFound, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrImageNotFound)
	assert.Empty(t, poster.posts, "no request must be sent")
}

func TestPostSendsDataURI(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{"success":true}`)}}
	service, _ := newTestPostService(poster, defaultStore(), nil)

	result := service.Post(context.Background(), &bytes.Buffer{}, PostRequest{})

	require.Len(t, poster.posts, 1)
	post := poster.posts[0]
	assert.Equal(t, "http://localhost:3001/api/posts/post", poster.apiURLs[0])
	assert.Equal(t, "Saving Time Using Prompts", post.Text)
	assert.Equal(t, EncodeDataURI("image/jpeg", jpegBytes), post.Image)
	assert.True(t, strings.HasPrefix(post.Image, "data:image/jpeg;base64,"))
	_, decoded, err := DecodeDataURI(post.Image)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, decoded)
	assert.NotEmpty(t, post.RequestID)
	assert.Equal(t, result.RequestID, post.RequestID)
}

func TestPostRequestOverridesDefaults(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{}`)}}
	store := &fakeImageStore{files: map[string][]byte{"other.png": {1, 2, 3}}}
	service, _ := newTestPostService(poster, store, map[string]any{ConfigKeyImageMIMEType: MIMETypeAuto})

	service.Post(context.Background(), &bytes.Buffer{}, PostRequest{ImagePath: "other.png", Caption: "another caption"})

	require.Len(t, poster.posts, 1)
	assert.Equal(t, "another caption", poster.posts[0].Text)
	assert.Equal(t, EncodeDataURI("image/png", []byte{1, 2, 3}), poster.posts[0].Image)
}

func TestPostRemoteImageIsPassedThrough(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{}`)}}
	service, _ := newTestPostService(poster, &fakeImageStore{}, nil)

	result := service.Post(context.Background(), &bytes.Buffer{}, PostRequest{ImagePath: "https://example.com/cat.jpg"})

	assert.Equal(t, OutcomePosted, result.Outcome)
	require.Len(t, poster.posts, 1)
	assert.Equal(t, "https://example.com/cat.jpg", poster.posts[0].Image)
}

func TestPostSuccessWithPostID(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{"success":true,"data":{"data":{"id":"12345"}}}`)}}
	service, _ := newTestPostService(poster, defaultStore(), nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	expected := `Sending request...
Success!
{
  "success": true,
  "data": {
    "data": {
      "id": "12345"
    }
  }
}
TWEET_URL: https://x.com/i/web/status/12345
`
	assert.Equal(t, expected, out.String())
	assert.Equal(t, OutcomePosted, result.Outcome)
	assert.Equal(t, 200, result.StatusCode)
	assert.Equal(t, "12345", result.PostID)
	assert.Equal(t, "https://x.com/i/web/status/12345", result.StatusURL)
	assert.NoError(t, result.Err)
}

func TestPostSuccessWithoutPostID(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{"success":true,"data":{}}`)}}
	service, logger := newTestPostService(poster, defaultStore(), nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	assert.Contains(t, out.String(), "Success!\n")
	assert.Contains(t, out.String(), `"success": true`)
	assert.NotContains(t, out.String(), "TWEET_URL")
	assert.NotContains(t, out.String(), "An error occurred")
	assert.Equal(t, OutcomePosted, result.Outcome)
	assert.Empty(t, result.StatusURL)
	assert.NoError(t, result.Err)
	require.NotEmpty(t, logger.messages)
	assert.Contains(t, logger.messages[len(logger.messages)-1], "no post id")
}

func TestPostCustomStatusURLFormat(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte(`{"data":{"data":{"id":"7"}}}`)}}
	service, _ := newTestPostService(poster, defaultStore(), map[string]any{ConfigKeyStatusURLFormat: "https://twitter.com/i/status/%s"})
	var out bytes.Buffer

	service.Post(context.Background(), &out, PostRequest{})

	assert.Contains(t, out.String(), "TWEET_URL: https://twitter.com/i/status/7\n")
}

func TestPostRejected(t *testing.T) {
	body := `{"error":"Text is required"` // deliberately not valid JSON: it must not be parsed
	poster := &fakePoster{response: &Response{StatusCode: 403, Body: []byte(body)}}
	service, _ := newTestPostService(poster, defaultStore(), nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	assert.Equal(t, "Sending request...\nFailed with status 403\n"+body+"\n", out.String())
	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.Equal(t, 403, result.StatusCode)
	assert.NoError(t, result.Err)
}

func TestPostInvalidJSONOnSuccess(t *testing.T) {
	poster := &fakePoster{response: &Response{StatusCode: 200, Body: []byte("<html>ok</html>")}}
	service, _ := newTestPostService(poster, defaultStore(), nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	assert.Equal(t, "Sending request...\nSuccess!\nAn error occurred: response body is not valid JSON\n", out.String())
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrInvalidJSON)
}

func TestPostReadFailure(t *testing.T) {
	poster := &fakePoster{}
	store := defaultStore()
	store.readErr = errors.New("permission denied")
	service, _ := newTestPostService(poster, store, nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	assert.Equal(t, "An error occurred: permission denied\n", out.String())
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Empty(t, poster.posts)
}

func TestPostNetworkFailure(t *testing.T) {
	poster := &fakePoster{err: errors.New("connection refused")}
	service, _ := newTestPostService(poster, defaultStore(), nil)
	var out bytes.Buffer

	result := service.Post(context.Background(), &out, PostRequest{})

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Sending request...", lines[0])
	assert.Equal(t, "An error occurred: connection refused", lines[1])
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.EqualError(t, result.Err, "connection refused")
}
