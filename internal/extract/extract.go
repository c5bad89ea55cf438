// Package extract converts the storefront's loosely typed prod_options
// payload into the strongly typed option model. All shape tolerance lives
// here; downstream code only sees well-formed values.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
)

// ColorSelection is the extracted dominant color signal.
type ColorSelection struct {
	Name     string
	RemoteID string
}

// Result holds everything pulled out of a prod_options payload.
type Result struct {
	InfoOptions []domain.OriginalOption
	Options     []domain.OriginalOption
	Color       *ColorSelection
	HeightRange *domain.HeightRange
}

// Parse walks a prod_options payload and extracts passthrough options, the
// dominant color, and any present height values. The payload may be absent,
// an empty array instead of an object, or contain non-object entries at any
// level; in all such cases the affected fragment contributes nothing.
//
// Order within a single parameter's value set follows document order. The
// two parameters the tool manages itself (dominant color, height) are not
// emitted as passthrough entries since they are re-synthesized on export.
func Parse(raw json.RawMessage) Result {
	var res Result

	root, err := decodeOrdered(raw)
	if err != nil {
		return res
	}
	products, ok := root.(*orderedObject)
	if !ok {
		return res
	}

	var heights []int

	for _, prodKey := range products.keys {
		params, ok := products.values[prodKey].(*orderedObject)
		if !ok {
			continue
		}
		for _, paramKey := range params.keys {
			param, ok := params.values[paramKey].(*orderedObject)
			if !ok {
				continue
			}

			name := stringField(param, "name")
			typ := stringField(param, "type")
			values, ok := param.values["values"].(*orderedObject)
			if !ok {
				continue
			}

			switch {
			case name == domain.ColorParamName && typ == domain.OptionTypeChoose:
				if res.Color == nil {
					res.Color = selectedColor(values)
				}

			case name == domain.HeightParamName && typ == domain.OptionTypeInfo:
				heights = append(heights, heightValues(values)...)

			case typ == domain.OptionTypeInfo:
				for _, valueKey := range values.keys {
					value, ok := values.values[valueKey].(*orderedObject)
					if !ok {
						continue
					}
					res.InfoOptions = append(res.InfoOptions, domain.OriginalOption{
						Name:     name,
						RemoteID: valueKey,
						Value:    stringField(value, "name"),
					})
				}

			case typ == domain.OptionTypeHidden:
				for _, valueKey := range values.keys {
					value, ok := values.values[valueKey].(*orderedObject)
					if !ok {
						continue
					}
					res.Options = append(res.Options, domain.OriginalOption{
						Name:     name,
						RemoteID: valueKey,
						Value:    stringField(value, "name"),
						Type:     domain.OptionTypeHidden,
					})
				}

			case typ == domain.OptionTypeChoose:
				for _, valueKey := range values.keys {
					value, ok := values.values[valueKey].(*orderedObject)
					if !ok {
						continue
					}
					if !isSelected(value.values["selected"]) {
						continue
					}
					res.Options = append(res.Options, domain.OriginalOption{
						Name:     name,
						RemoteID: valueKey,
						Value:    stringField(value, "name"),
					})
				}
			}
		}
	}

	if len(heights) > 0 {
		min, max := heights[0], heights[0]
		for _, h := range heights[1:] {
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
		r := domain.NewHeightRange(min, max)
		res.HeightRange = &r
	}

	return res
}

// selectedColor returns the first value marked selected, or nil.
func selectedColor(values *orderedObject) *ColorSelection {
	for _, valueKey := range values.keys {
		value, ok := values.values[valueKey].(*orderedObject)
		if !ok {
			continue
		}
		if !isSelected(value.values["selected"]) {
			continue
		}
		return &ColorSelection{
			Name:     stringField(value, "name"),
			RemoteID: valueKey,
		}
	}
	return nil
}

// heightValues collects integer-parseable value names that exist in the
// height table. Info-type values are not gated by a selected flag.
func heightValues(values *orderedObject) []int {
	var out []int
	for _, valueKey := range values.keys {
		value, ok := values.values[valueKey].(*orderedObject)
		if !ok {
			continue
		}
		h, err := strconv.Atoi(strings.TrimSpace(stringField(value, "name")))
		if err != nil {
			continue
		}
		if domain.IsValidHeight(h) {
			out = append(out, h)
		}
	}
	return out
}

func stringField(obj *orderedObject, key string) string {
	s, _ := obj.values[key].(string)
	return s
}

// isSelected mirrors the storefront convention: a selected marker is truthy
// when it is a non-empty trimmed string, true, or a nonzero number.
func isSelected(v any) bool {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case json.Number:
		return t.String() != "0"
	default:
		return false
	}
}

// orderedObject is a JSON object with document key order preserved.
type orderedObject struct {
	keys   []string
	values map[string]any
}

// decodeOrdered parses raw into nested orderedObject / []any / scalar values.
func decodeOrdered(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool, or nil
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (*orderedObject, error) {
	obj := &orderedObject{values: make(map[string]any)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("non-string object key %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.keys = append(obj.keys, key)
		obj.values[key] = val
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	var arr []any
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
