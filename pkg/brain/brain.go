package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Ask sends a single request to the answering service. Failures are never retried.
func (b *brainImpl) Ask(ctx context.Context, question string) Result {
	if !b.configured {
		return errorResult(ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	body, err := json.Marshal(Query{UserQuestion: question})
	if err != nil {
		b.l.Errorf(ctx, "%s: failed to marshal query: %v", LogPrefixAsk, err)
		return errorResult(networkError(err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(body))
	if err != nil {
		b.l.Errorf(ctx, "%s: failed to create request: %v", LogPrefixAsk, err)
		return errorResult(networkError(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	b.l.Debugf(ctx, "%s: POST %s body=%s", LogPrefixAsk, b.url, body)

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		b.l.Errorf(ctx, "%s: call failed: %v", LogPrefixAsk, err)
		return errorResult(networkError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		b.l.Warnf(ctx, "%s: HTTP %d: %s", LogPrefixAsk, resp.StatusCode, raw)
		return errorResult(&HTTPError{StatusCode: resp.StatusCode, Body: string(raw)})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		b.l.Errorf(ctx, "%s: failed to read response: %v", LogPrefixAsk, err)
		return errorResult(networkError(err))
	}

	contentType := resp.Header.Get("Content-Type")
	b.l.Debugf(ctx, "%s: HTTP %d content-type=%q body=%s", LogPrefixAsk, resp.StatusCode, contentType, truncate(raw))

	return Normalize(contentType, raw)
}

// Configured reports whether an endpoint URL was supplied.
func (b *brainImpl) Configured() bool {
	return b.configured
}

// Normalize turns a successful response body into a Result.
//
// JSON bodies yield their "answer" string when it is present and non-empty;
// any other JSON (including unparsable bodies, read as {}) is serialized back
// so the user still sees something. Non-JSON bodies are returned as-is, with
// EmptyAnswerPlaceholder standing in for a blank body.
func Normalize(contentType string, raw []byte) Result {
	if !isJSON(contentType) {
		text := string(raw)
		if strings.TrimSpace(text) == "" {
			return rawTextResult(EmptyAnswerPlaceholder)
		}
		return rawTextResult(text)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		parsed = map[string]any{}
	}

	if obj, ok := parsed.(map[string]any); ok {
		if answer, ok := obj["answer"].(string); ok && answer != "" {
			return answerResult(answer)
		}
	}

	serialized, err := marshalText(parsed)
	if err != nil {
		return rawTextResult(EmptyAnswerPlaceholder)
	}
	return rawTextResult(serialized)
}

// marshalText serializes v for display, leaving <, > and & unescaped.
func marshalText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func truncate(raw []byte) []byte {
	if len(raw) <= maxLoggedBody {
		return raw
	}
	return raw[:maxLoggedBody]
}
