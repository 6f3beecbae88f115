package pwned

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 6 << 20

// Request is a fully signed call ready to be sent.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends one request and returns the raw response whatever its
// status. It must accept a body on every method, DELETE included. A non-nil
// error may come with a partial Response when a body was already read.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport sends requests through net/http with OpenTelemetry client
// instrumentation.
type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}

	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	instrumented := *client
	instrumented.Transport = otelhttp.NewTransport(base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "pwned " + r.Method
		}),
	)

	return &HTTPTransport{client: &instrumented}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	httpReq.Header = req.Header.Clone()

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	out := &Response{StatusCode: resp.StatusCode, Body: raw}
	if err != nil {
		return out, crerr.Wrap(err, "read response body")
	}
	return out, nil
}

// FastTransport sends requests through fasthttp. The context deadline, when
// present, bounds the call; otherwise Timeout does when positive.
type FastTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFastTransport(client *fasthttp.Client, timeout time.Duration) *FastTransport {
	if client == nil {
		client = &fasthttp.Client{
			Name:                     userAgent(),
			MaxResponseBodySize:      maxResponseBytes,
			NoDefaultUserAgentHeader: true,
		}
	}
	return &FastTransport{client: client, timeout: timeout}
}

func (t *FastTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fastReq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(fastReq)
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(fastResp)

	fastReq.SetRequestURI(req.URL)
	fastReq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, value := range values {
			fastReq.Header.Add(key, value)
		}
	}
	if req.Body != nil {
		fastReq.SetBodyRaw(req.Body)
	}

	var err error
	switch deadline, ok := ctx.Deadline(); {
	case ok:
		err = t.client.DoDeadline(fastReq, fastResp, deadline)
	case t.timeout > 0:
		err = t.client.DoTimeout(fastReq, fastResp, t.timeout)
	default:
		err = t.client.Do(fastReq, fastResp)
	}
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: fastResp.StatusCode(),
		Body:       append([]byte(nil), fastResp.Body()...),
	}, nil
}
