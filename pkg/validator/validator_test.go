package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Input  string `json:"input" validate:"required"`
	Kind   string `json:"kind" validate:"omitempty,oneof=json html"`
	Height int    `json:"height" validate:"omitempty,gte=82,lte=205"`
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(sampleRequest{Input: "12345", Kind: "json", Height: 170}))
}

func TestValidate_FieldErrors(t *testing.T) {
	err := Validate(sampleRequest{Kind: "xml", Height: 300})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Input"])
	assert.Equal(t, "must be one of: json html", fields["Kind"])
	assert.Equal(t, "must be less than or equal to 205", fields["Height"])
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"input":"p12345"}`))
	var req sampleRequest
	require.NoError(t, DecodeAndValidate(r, &req))
	assert.Equal(t, "p12345", req.Input)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{bad json`))
	err := DecodeAndValidate(r, &sampleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
