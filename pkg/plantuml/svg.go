package plantuml

import "regexp"

var dimensionsRe = regexp.MustCompile(`width:([0-9]+)px;height:([0-9]+)px;`)

// Geometry is the pixel size declared by a rendered SVG.
// Both fields are empty when no size was found.
type Geometry struct {
	Width  string
	Height string
}

// IsZero reports whether no size was found.
func (g Geometry) IsZero() bool {
	return g.Width == "" && g.Height == ""
}

// ExtractGeometry returns the first "width:<n>px;height:<n>px;" pair found
// anywhere in svg. A missing declaration is not an error.
func ExtractGeometry(svg []byte) Geometry {
	m := dimensionsRe.FindSubmatch(svg)
	if m == nil {
		return Geometry{}
	}
	return Geometry{Width: string(m[1]), Height: string(m[2])}
}
