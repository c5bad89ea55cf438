// Package prompt selects, loads, and renders the text templates sent to the
// generation model.
package prompt

// Template file names. The storefront team authors these as plain text files
// with ### section headers and {placeholder} tokens.
const (
	TemplateBike99Spokes     = "prompt_newdesc_99spokes.txt"
	TemplateBikeScott        = "prompt_newdesc_scott.txt"
	TemplateBikeWithSpecs    = "prompt_newdesc_with_specs.txt"
	TemplateBike             = "prompt_newdesc.txt"
	TemplateMicro            = "prompt_newdesc_micro.txt"
	TemplateLeatt            = "prompt_newdesc_leatt.txt"
	TemplateNotBikeWithSpecs = "prompt_newdesc_notbike_with_specs.txt"
	TemplateNotBike          = "prompt_newdesc_notbike.txt"
	TemplateShortBike        = "prompt_shortdesc.txt"
	TemplateShortNotBike     = "prompt_shortdesc_short.txt"
)

// Producer names with dedicated templates. The comparisons are exact and
// case-sensitive; the storefront stores brand names with this casing.
const (
	producerScott = "SCOTT"
	producerMicro = "Micro"
	producerLeatt = "Leatt"
)

// Select picks the template and specification payload for a long-description
// generation. Branch order matters; first match wins.
func Select(isBike bool, producerName, jsonSpec, htmlSpec string) (templateID, payload string) {
	if isBike {
		return selectBike(producerName, jsonSpec, htmlSpec)
	}
	return selectNonBike(producerName, jsonSpec, htmlSpec)
}

func selectBike(producerName, jsonSpec, htmlSpec string) (string, string) {
	switch {
	case jsonSpec != "":
		return TemplateBike99Spokes, jsonSpec
	case producerName == producerScott && htmlSpec == "":
		return TemplateBikeScott, ""
	case htmlSpec != "":
		return TemplateBikeWithSpecs, htmlSpec
	default:
		return TemplateBike, ""
	}
}

func selectNonBike(producerName, jsonSpec, htmlSpec string) (string, string) {
	switch {
	case jsonSpec != "" && producerName == producerMicro:
		return TemplateMicro, jsonSpec
	case jsonSpec != "" && producerName == producerLeatt:
		return TemplateLeatt, jsonSpec
	case jsonSpec != "" || htmlSpec != "":
		payload := htmlSpec
		if payload == "" {
			payload = jsonSpec
		}
		return TemplateNotBikeWithSpecs, payload
	default:
		return TemplateNotBike, ""
	}
}

// SelectShort picks the template for short-description derivation.
func SelectShort(isBike bool) string {
	if isBike {
		return TemplateShortBike
	}
	return TemplateShortNotBike
}
