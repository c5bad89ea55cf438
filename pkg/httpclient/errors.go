package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an Upstream AppError. The upstream body is preserved verbatim in
// the error message because the storefront returns human-readable failure
// text that the operator needs to see.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return apperrors.Upstream(serviceName, fmt.Sprintf("status %d (failed to read body: %v)", resp.StatusCode, err))
	}

	return apperrors.Upstream(serviceName, fmt.Sprintf("status %d: %s", resp.StatusCode, string(bodyBytes)))
}

// WrapTransportError classifies a failed outbound call. Deadline expiry is
// reported as its own failure kind so the operator can tell a slow upstream
// from a broken one.
func WrapTransportError(serviceName string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Deadline(serviceName, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Deadline(serviceName, err)
	}

	return apperrors.Upstream(serviceName, err.Error())
}
