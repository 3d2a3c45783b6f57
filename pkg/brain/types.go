package brain

import (
	"net/http"
	"time"

	"mcw-copilot/pkg/log"
)

// Config holds answering service client configuration.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Query is the JSON payload posted to the answering service.
type Query struct {
	UserQuestion string `json:"userQuestion"`
}

// Kind tags the variant held by a Result.
type Kind string

const (
	KindAnswer  Kind = "answer"  // JSON body with a non-empty string "answer"
	KindRawText Kind = "rawText" // plain text body, or serialized JSON without a usable answer
	KindError   Kind = "error"   // not configured, HTTP error or network error
)

// Result is the normalized outcome of one call.
// Text is set for KindAnswer and KindRawText, Err for KindError.
type Result struct {
	Kind Kind
	Text string
	Err  error
}

func answerResult(text string) Result  { return Result{Kind: KindAnswer, Text: text} }
func rawTextResult(text string) Result { return Result{Kind: KindRawText, Text: text} }
func errorResult(err error) Result     { return Result{Kind: KindError, Err: err} }

// brainImpl is the internal implementation of IBrain.
type brainImpl struct {
	l          log.Logger
	url        string
	timeout    time.Duration
	configured bool
	httpClient *http.Client
}
