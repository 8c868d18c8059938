package drawio

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Replacers apply their pairs in a single left-to-right pass, which gives
// the same result as substituting "&" before the other entities.
var (
	xmlEntityReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)

	// "\r\n" must be listed before its single-character prefixes.
	controlReplacer = strings.NewReplacer(
		"\r\n", `\n`,
		"\n", `\n`,
		"\r", `\n`,
		"\t", `\t`,
	)
)

// EscapeSource returns a copy of the diagram source that is safe to embed as
// a string value inside an XML attribute.
//
// The five reserved XML characters become entities, every line ending
// (CRLF, LF, CR) becomes the two characters `\n`, and every tab becomes
// `\t`. The result never contains a raw newline or tab.
func EscapeSource(s string) string {
	return controlReplacer.Replace(xmlEntityReplacer.Replace(s))
}

// PlantUMLData returns the JSON-shaped plantUmlData attribute value for an
// already escaped source string.
func PlantUMLData(escaped string) string {
	return fmt.Sprintf("{\n  \"data\": \"%s\",\n  \"format\": \"%s\"\n}", escaped, formatSVG)
}

// EncodeImage base64-encodes rendered image bytes (standard alphabet, padded).
func EncodeImage(svg []byte) string {
	return base64.StdEncoding.EncodeToString(svg)
}

// ImageDataURI returns the data URI embedding svg. The base64 payload is
// not URL-escaped.
func ImageDataURI(svg []byte) string {
	return svgDataURIPrefix + EncodeImage(svg)
}

// FormatModified formats t as an ISO-8601 UTC timestamp with millisecond
// precision and a literal Z suffix, e.g. 2024-01-01T00:00:00.000Z.
func FormatModified(t time.Time) string {
	return t.UTC().Format(modifiedLayout)
}
