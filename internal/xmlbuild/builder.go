// Package xmlbuild serializes session state into the storefront's import
// XML. The receiving system is byte-shape sensitive: element order, nesting,
// and the per-option <options> wrappers must match its importer exactly,
// so the document is assembled as text rather than through encoding/xml.
package xmlbuild

import (
	"strings"
	"time"

	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
)

const dateFormat = "2006-01-02 15:04:05"

// entityEscaper covers the five XML entities. Remote ids are numeric strings
// assigned by the storefront and are emitted unescaped.
var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// cdataGuard splits an embedded "]]>" across two CDATA sections so the
// document stays well formed regardless of what the model generated.
var cdataGuard = strings.NewReplacer("]]>", "]]]]><![CDATA[>")

// Build serializes one product update. It is a pure function of the snapshot;
// calling it twice with the same snapshot and timestamp yields identical bytes.
func Build(productID string, snap domain.Snapshot, now time.Time) string {
	return buildDocument([]string{productID}, snap, now)
}

// BuildBatch serializes one <item> per product id, each carrying the same
// snapshot of descriptions and options. Used to apply one result to several
// near-duplicate listings.
func BuildBatch(productIDs []string, snap domain.Snapshot, now time.Time) string {
	return buildDocument(productIDs, snap, now)
}

func buildDocument(productIDs []string, snap domain.Snapshot, now time.Time) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<products xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="1" date="`)
	b.WriteString(now.Format(dateFormat))
	b.WriteString("\">\n")

	for _, id := range productIDs {
		writeItem(&b, id, snap)
	}

	b.WriteString("</products>")
	return b.String()
}

func writeItem(b *strings.Builder, productID string, snap domain.Snapshot) {
	b.WriteString("    <item>\n")
	b.WriteString("        <prod_id>" + entityEscaper.Replace(productID) + "</prod_id>\n")
	b.WriteString("        <prod_shortdesc_pl><![CDATA[" + cdataGuard.Replace(snap.Descriptions.Short) + "]]></prod_shortdesc_pl>\n")
	b.WriteString("        <prod_desc_pl><![CDATA[" + cdataGuard.Replace(snap.Descriptions.Long) + "]]></prod_desc_pl>\n")

	writeInfoOptions(b, snap)
	writeOptions(b, snap)

	b.WriteString("    </item>\n")
}

// writeInfoOptions emits passthrough info options (height entries excluded,
// height is re-synthesized from the stored range) followed by the synthesized
// height values in ascending order. The wrapper is omitted when empty.
func writeInfoOptions(b *strings.Builder, snap domain.Snapshot) {
	var entries []domain.OriginalOption

	for _, opt := range snap.InfoOptions {
		if opt.Name == domain.HeightParamName {
			continue
		}
		entries = append(entries, opt)
	}

	if snap.HeightRange != nil {
		for _, h := range snap.HeightRange.ExportValues() {
			entries = append(entries, domain.OriginalOption{
				Name:     h.Name,
				RemoteID: h.RemoteID,
				Value:    h.Value,
			})
		}
	}

	if len(entries) == 0 {
		return
	}

	b.WriteString("        <info_options>\n")
	for _, opt := range entries {
		b.WriteString("            " + optionElement(opt, false) + "\n")
	}
	b.WriteString("        </info_options>\n")
}

// writeOptions emits passthrough options (color entries excluded, color is
// re-synthesized from the selection) followed by the synthesized color.
// Each option gets its own wrapping <options> element; the importer treats
// every inner group as one parameter. The outer wrapper is omitted when empty.
func writeOptions(b *strings.Builder, snap domain.Snapshot) {
	var entries []domain.OriginalOption

	for _, opt := range snap.Options {
		if opt.Name == domain.ColorParamName {
			continue
		}
		entries = append(entries, opt)
	}

	if snap.Parameters.HasColor() {
		entries = append(entries, domain.OriginalOption{
			Name:     domain.ColorParamName,
			RemoteID: snap.Parameters.ColorRemoteID,
			Value:    snap.Parameters.Color,
		})
	}

	if len(entries) == 0 {
		return
	}

	b.WriteString("        <options>\n")
	for _, opt := range entries {
		b.WriteString("            <options>\n")
		b.WriteString("                " + optionElement(opt, true) + "\n")
		b.WriteString("            </options>\n")
	}
	b.WriteString("        </options>\n")
}

func optionElement(opt domain.OriginalOption, required bool) string {
	var b strings.Builder
	b.WriteString(`<option name="` + entityEscaper.Replace(opt.Name) + `" remote_id="` + opt.RemoteID + `"`)
	if opt.Type == domain.OptionTypeHidden {
		b.WriteString(` type="hidden"`)
	}
	if required {
		b.WriteString(` required="1"`)
	}
	b.WriteString(">" + entityEscaper.Replace(opt.Value) + "</option>")
	return b.String()
}
