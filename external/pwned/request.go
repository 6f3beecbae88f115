package pwned

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/wire"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var signatureParamRegex = regexp.MustCompile(`signature=[0-9a-fA-F]+`)

// call signs and sends one request and returns the logical payload of the
// response envelope.
func (c *Client) call(ctx context.Context, method, resource string, body any) (json.RawMessage, error) {
	ctx, span := startSpan(ctx, "pwned."+strings.ToLower(method))
	defer span.End()
	span.SetAttributes(
		attribute.String("pwned.method", method),
		attribute.String("pwned.resource", resource),
	)

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "pwned circuit breaker rejected request", "state", c.breaker.State(), "resource", resource)
			return nil, crerr.Wrapf(ErrServiceUnavailable, "%s %s", method, resource)
		}
	}

	payload, err := encodeBody(body)
	if err != nil {
		c.releaseProbe()
		return nil, crerr.Wrapf(err, "encode %s %s body", method, resource)
	}

	signature := Sign(c.publicKey, c.privateKey, method, resource, string(payload))
	req := &Request{
		Method: method,
		URL:    c.baseURL + resource + "?" + signedQuery(c.publicKey, signature),
		Header: c.headers(),
		Body:   payload,
	}

	started := time.Now()
	resp, err := c.transport.RoundTrip(ctx, req)
	if err != nil && (resp == nil || len(bytes.TrimSpace(resp.Body)) == 0) {
		c.recordFailure()
		callErr := &TransportError{Method: method, URL: redactSignature(req.URL), Err: err}
		span.RecordError(callErr)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.WarnContext(ctx, "pwned request failed",
			"method", method,
			"resource", resource,
			"duration", time.Since(started),
			"error", callErr,
		)
		return nil, callErr
	}
	if resp == nil {
		c.recordFailure()
		callErr := &TransportError{Method: method, URL: redactSignature(req.URL), Err: crerr.New("nil response")}
		span.RecordError(callErr)
		span.SetStatus(codes.Error, "transport failure")
		return nil, callErr
	}
	c.recordSuccess()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "pwned request completed",
		"method", method,
		"resource", resource,
		"status", resp.StatusCode,
		"duration", time.Since(started),
		"signed_body", len(payload) > 0,
	)

	result, err := decodeEnvelope(resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pwned error response")
		c.logger.WarnContext(ctx, "pwned call rejected",
			"method", method,
			"resource", resource,
			"status", resp.StatusCode,
			"error", err,
		)
		return nil, err
	}
	return result, nil
}

// encodeBody returns nil for a missing body and for one that encodes to
// null or an empty list or object, so the canonical string carries an empty
// body component in those cases.
func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := sonic.Marshal(body)
	if err != nil {
		return nil, err
	}
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "[]", "{}":
		return nil, nil
	}
	return raw, nil
}

// decodeEnvelope reads {"result": ...}, {"error": {"reason": ...}} or a bare
// payload. The status code does not decide success; the body does.
func decodeEnvelope(resp *Response) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || !sonic.Valid(trimmed) {
		return nil, &InvalidResponseError{
			StatusCode: resp.StatusCode,
			Raw:        resp.Body,
			Err:        crerr.New("response body is not valid JSON"),
		}
	}
	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := sonic.Unmarshal(trimmed, &envelope); err != nil {
		return nil, &InvalidResponseError{StatusCode: resp.StatusCode, Raw: resp.Body, Err: err}
	}

	if raw, ok := envelope["error"]; ok && !isFalsy(raw) {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     errorReason(raw),
			Raw:        resp.Body,
		}
	}
	if raw, ok := envelope["result"]; ok {
		return raw, nil
	}
	return json.RawMessage(trimmed), nil
}

func errorReason(raw json.RawMessage) string {
	var detail struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(raw, &detail); err == nil {
		if reason := strings.TrimSpace(detail.Reason); reason != "" {
			return reason
		}
		if message := strings.TrimSpace(detail.Message); message != "" {
			return message
		}
	}

	var text string
	if err := sonic.Unmarshal(raw, &text); err == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}
	return "unknown error: " + abbreviateBody(raw)
}

func isFalsy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`, "[]", "{}":
		return true
	}
	return false
}

func decodeOne[T any, P wire.Ptr[T]](raw json.RawMessage) (P, error) {
	if isFalsy(raw) {
		return nil, ErrEmptyResult
	}
	return wire.UnmarshalNew[T, P](raw)
}

func decodeList[T any, P wire.Ptr[T]](raw json.RawMessage) ([]P, error) {
	return wire.UnmarshalList[T, P](raw)
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) releaseProbe() {
	if c.breaker != nil {
		c.breaker.Release()
	}
}

func redactSignature(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return signatureParamRegex.ReplaceAllString(rawURL, "signature=REDACTED")
	}
	query := parsed.Query()
	if query.Has("signature") {
		query.Set("signature", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
