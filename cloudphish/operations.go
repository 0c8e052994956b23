package cloudphish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloudphish/internal/utils"
	"github.com/MKhiriev/go-cloudphish/models"
	"github.com/go-resty/resty/v2"
)

var errNotAnObject = errors.New("response is not a JSON object")

// API paths relative to the base URL.
const (
	submitPath        = "api/cloudphish/submit"
	downloadPath      = "api/cloudphish/download"
	downloadAlertPath = "api/cloudphish/download_alert"
	clearPath         = "api/cloudphish/clear_alert"
)

// Submit posts req to api/cloudphish/submit and decodes the JSON object the
// server returns. The HTTP status is not checked.
func (c *Client) Submit(ctx context.Context, req models.SubmitRequest) (models.Result, error) {
	resp, err := c.submit(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult(resp, "submit")
	if err != nil {
		return nil, err
	}
	if status, ok := result.String(models.ResultStatus); ok {
		c.logger.Debug().Str("url", req.URL).Str("status", status).Msg("url status")
	}

	return result, nil
}

// SubmitText is Submit returning the response body verbatim.
func (c *Client) SubmitText(ctx context.Context, req models.SubmitRequest) (string, error) {
	resp, err := c.submit(ctx, req)
	if err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (c *Client) submit(ctx context.Context, req models.SubmitRequest) (*resty.Response, error) {
	c.logger.Debug().
		Str("url", req.URL).
		Bool("reprocess", req.Reprocess).
		Bool("alert", req.Alert).
		Msg("checking on url")

	resp, err := c.request(ctx).
		SetQueryParams(req.QueryParams()).
		Post(submitPath)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}
	c.logResponse(resp)

	return resp, nil
}

// Get downloads the cached content identified by sha256 from
// api/cloudphish/download, or api/cloudphish/download_alert when compressed
// is set, and returns the body as text.
//
// Returns a *RemoteError if the server answers with anything but 200 OK.
func (c *Client) Get(ctx context.Context, sha256 string, compressed bool) (string, error) {
	c.logger.Debug().Str("sha256", sha256).Bool("compressed", compressed).Msg("downloading content")

	path := downloadPath
	if compressed {
		path = downloadAlertPath
	}

	resp, err := c.request(ctx).
		SetQueryParam(models.ParamSHA256, sha256).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}
	c.logResponse(resp)

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Clear asks cloudphish to drop its cached result for url and decodes the
// JSON object the server returns. The HTTP status is not checked.
func (c *Client) Clear(ctx context.Context, url string) (models.Result, error) {
	c.logger.Debug().Str("url", url).Msg("clearing cached results")

	resp, err := c.request(ctx).
		SetQueryParam(models.ParamURL, url).
		Get(clearPath)
	if err != nil {
		return nil, fmt.Errorf("clear request: %w", err)
	}
	c.logResponse(resp)

	return decodeResult(resp, "clear")
}

// WithTraceID returns a copy of ctx whose requests carry traceID in the
// X-Trace-ID header instead of a generated id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return utils.WithTraceID(ctx, traceID)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

func (c *Client) logResponse(resp *resty.Response) {
	c.logger.Debug().
		Str("method", resp.Request.Method).
		Str("path", resp.Request.RawRequest.URL.Path).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("cloudphish response")
}

func decodeResult(resp *resty.Response, op string) (models.Result, error) {
	var result models.Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", op, resp.StatusCode(), err)
	}
	if result == nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", op, resp.StatusCode(), errNotAnObject)
	}

	return result, nil
}
