package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstList(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "single list",
			doc:  "<p>intro</p><ul><li>rama: aluminium</li><li>koła: 29 cali</li></ul>",
			want: "<ul><li>rama: aluminium</li><li>koła: 29 cali</li></ul>",
		},
		{
			name: "first of several lists",
			doc:  "<ul><li>a</li></ul><ul><li>b</li></ul>",
			want: "<ul><li>a</li></ul>",
		},
		{
			name: "nested inside other markup",
			doc:  "<div><h2>Zalety</h2><div><ul><li>lekki</li></ul></div></div>",
			want: "<ul><li>lekki</li></ul>",
		},
		{
			name: "no list",
			doc:  "<p>tylko akapity</p>",
			want: "",
		},
		{
			name: "empty input",
			doc:  "",
			want: "",
		},
		{
			name: "unclosed tags parsed leniently",
			doc:  "<ul><li>pierwszy<li>drugi</ul>",
			want: "<ul><li>pierwszy</li><li>drugi</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstList(tt.doc))
		})
	}
}
