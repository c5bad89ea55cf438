package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect_Bike(t *testing.T) {
	tests := []struct {
		name        string
		producer    string
		jsonSpec    string
		htmlSpec    string
		wantTmpl    string
		wantPayload string
	}{
		{
			name:        "json spec wins regardless of producer",
			producer:    "SCOTT",
			jsonSpec:    `{"frame":"carbon"}`,
			htmlSpec:    "<table/>",
			wantTmpl:    TemplateBike99Spokes,
			wantPayload: `{"frame":"carbon"}`,
		},
		{
			name:     "scott without html spec",
			producer: "SCOTT",
			wantTmpl: TemplateBikeScott,
		},
		{
			name:        "scott with html spec falls through to with-specs",
			producer:    "SCOTT",
			htmlSpec:    "<table/>",
			wantTmpl:    TemplateBikeWithSpecs,
			wantPayload: "<table/>",
		},
		{
			name:        "html spec only",
			producer:    "Kross",
			htmlSpec:    "<table/>",
			wantTmpl:    TemplateBikeWithSpecs,
			wantPayload: "<table/>",
		},
		{
			name:     "no specs",
			producer: "Kross",
			wantTmpl: TemplateBike,
		},
		{
			name:     "producer match is case sensitive",
			producer: "Scott",
			wantTmpl: TemplateBike,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, payload := Select(true, tt.producer, tt.jsonSpec, tt.htmlSpec)
			assert.Equal(t, tt.wantTmpl, tmpl)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestSelect_NonBike(t *testing.T) {
	tests := []struct {
		name        string
		producer    string
		jsonSpec    string
		htmlSpec    string
		wantTmpl    string
		wantPayload string
	}{
		{
			name:        "micro with json spec",
			producer:    "Micro",
			jsonSpec:    `{"wheels":120}`,
			wantTmpl:    TemplateMicro,
			wantPayload: `{"wheels":120}`,
		},
		{
			name:        "leatt with json spec",
			producer:    "Leatt",
			jsonSpec:    `{"size":"M"}`,
			wantTmpl:    TemplateLeatt,
			wantPayload: `{"size":"M"}`,
		},
		{
			name:        "html spec preferred over json for generic producer",
			producer:    "Abus",
			jsonSpec:    `{"a":1}`,
			htmlSpec:    "<table/>",
			wantTmpl:    TemplateNotBikeWithSpecs,
			wantPayload: "<table/>",
		},
		{
			name:        "json spec only for generic producer",
			producer:    "Abus",
			jsonSpec:    `{"a":1}`,
			wantTmpl:    TemplateNotBikeWithSpecs,
			wantPayload: `{"a":1}`,
		},
		{
			name:     "no specs",
			producer: "Abus",
			wantTmpl: TemplateNotBike,
		},
		{
			name:     "micro without json spec is generic",
			producer: "Micro",
			wantTmpl: TemplateNotBike,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, payload := Select(false, tt.producer, tt.jsonSpec, tt.htmlSpec)
			assert.Equal(t, tt.wantTmpl, tmpl)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestSelectShort(t *testing.T) {
	assert.Equal(t, TemplateShortBike, SelectShort(true))
	assert.Equal(t, TemplateShortNotBike, SelectShort(false))
}
