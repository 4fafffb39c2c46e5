package domain

import "errors"

var (
	ErrImageNotFound = errors.New("image not found")
	ErrInvalidJSON   = errors.New("response body is not valid JSON")
)

// Post is the JSON payload accepted by the posting API.
type Post struct {
	Text  string `json:"text"`
	Image string `json:"image"`

	// RequestID travels in a header, not in the body.
	RequestID string `json:"-"`
}

// Response is what came back over HTTP. The body is kept raw: it's parsed only on success.
type Response struct {
	StatusCode int
	Body       []byte
}

type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeImageNotFound
	OutcomeRejected
	OutcomePosted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeImageNotFound:
		return "image not found"
	case OutcomeRejected:
		return "rejected"
	case OutcomePosted:
		return "posted"
	default:
		return "failed"
	}
}

// Result summarizes a single posting run for front ends which want more than the console output.
type Result struct {
	Outcome    Outcome
	RequestID  string
	StatusCode int
	PostID     string
	StatusURL  string
	Err        error
}
