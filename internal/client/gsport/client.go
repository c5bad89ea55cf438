// Package gsport is the client for the Sky-Shop storefront API.
package gsport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/LechDutkiewicz/gsport-ai/pkg/httpclient"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// HTTPDoer is the subset of the HTTP client this package needs. Both the plain
// retrying client and its circuit breaker wrapper satisfy it.
type HTTPDoer interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	PostForm(ctx context.Context, url string, form url.Values) (*http.Response, error)
}

// ProductRecord is the storefront's product payload. The structure is loosely
// typed on the remote side; prod_options is kept raw and handed to the
// extractor, which owns all shape tolerance.
type ProductRecord struct {
	ProdName     string          `json:"prod_name"`
	ProdDescLong string          `json:"prod_desclong"`
	ProdImgSrc   string          `json:"prod_img_src"`
	PrdName      string          `json:"prd_name"`
	PrdLogo      string          `json:"prd_logo"`
	PrdLinkText  string          `json:"prd_link_text"`
	ProdOptions  json.RawMessage `json:"prod_options"`
}

// Client talks to the storefront function API.
type Client struct {
	http   HTTPDoer
	apiURL string
	apiKey string
	lang   string
}

// New creates a storefront client.
func New(doer HTTPDoer, apiURL, apiKey, lang string) *Client {
	return &Client{
		http:   doer,
		apiURL: apiURL,
		apiKey: apiKey,
		lang:   lang,
	}
}

// FetchProduct retrieves a product record by id. A null, empty, or
// list-shaped response body means the product does not exist.
func (c *Client) FetchProduct(ctx context.Context, productID string) (*ProductRecord, error) {
	q := url.Values{
		"function":  {"getProductData"},
		"APIkey":    {c.apiKey},
		"productID": {productID},
		"lang":      {c.lang},
	}

	resp, err := c.http.Get(ctx, c.apiURL+"?"+q.Encode())
	if err != nil {
		return nil, httpclient.WrapTransportError("gsport", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, httpclient.ParseResponseError(resp, "gsport")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httpclient.WrapTransportError("gsport", err)
	}

	if isEmptyRecord(body) {
		return nil, apperrors.NotFound("product", productID)
	}

	var record ProductRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, apperrors.Upstream("gsport", fmt.Sprintf("invalid JSON response: %v", err))
	}

	return &record, nil
}

func isEmptyRecord(body []byte) bool {
	trimmed := string(bytes.TrimSpace(body))
	switch trimmed {
	case "", "null", "false", "[]", "{}":
		return true
	}
	return false
}

// UpdateProduct posts an XML update payload to the import endpoint.
// On success the storefront's response body is returned for logging;
// a non-200 status surfaces the body verbatim in the error.
func (c *Client) UpdateProduct(ctx context.Context, xmlPayload string) (string, error) {
	form := url.Values{
		"function":   {"addUpdateProducts"},
		"APIkey":     {c.apiKey},
		"importType": {"update"},
		"prodIndex":  {"prod_id"},
		"xml":        {xmlPayload},
	}

	resp, err := c.http.PostForm(ctx, c.apiURL, form)
	if err != nil {
		return "", httpclient.WrapTransportError("gsport", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", httpclient.ParseResponseError(resp, "gsport")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", httpclient.WrapTransportError("gsport", err)
	}

	return string(body), nil
}

var productIDPattern = regexp.MustCompile(`p(\d+)`)

// ExtractProductID pulls a product id out of a Sky-Shop product URL
// (the "p<digits>" segment) or accepts a bare numeric id.
func ExtractProductID(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.InvalidInput("input is empty, paste a product link or id")
	}

	if m := productIDPattern.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}

	if isDigits(text) {
		return text, nil
	}

	return "", apperrors.InvalidInput("paste a Sky-Shop product link or a numeric product id")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
