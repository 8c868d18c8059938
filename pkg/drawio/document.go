package drawio

import (
	"encoding/xml"
	"fmt"
)

// =============================================================================
// Constants
// =============================================================================

// Identifiers written into every document. Downstream tooling may match on
// these exact strings.
const (
	Host         = "app.diagrams.net"
	AgentName    = "5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/101.0.0.0 Safari/537.36"
	ETagID       = "ETAG111111111111xx01"
	DiagramID    = "DIAGRAM111111111xx01"
	UserObjectID = "USEROBJECT111111xx01-1"
	FileVersion  = "20.0.1"
	FileType     = "embed"
	PageName     = "Page-1"
)

const (
	formatSVG        = "svg"
	svgDataURIPrefix = "data:image/svg+xml,"
	imageStylePrefix = "shape=image;noLabel=1;verticalAlign=top;aspect=fixed;imageAspect=0;image="
	modifiedLayout   = "2006-01-02T15:04:05.000Z"
)

// =============================================================================
// Document Tree
// =============================================================================

// MxFile is the root <mxfile> element. Field order is attribute order.
type MxFile struct {
	XMLName  xml.Name `xml:"mxfile"`
	Host     string   `xml:"host,attr"`
	Modified string   `xml:"modified,attr"`
	Agent    string   `xml:"agent,attr"`
	ETag     string   `xml:"etag,attr"`
	Version  string   `xml:"version,attr"`
	Type     string   `xml:"type,attr"`
	Diagram  Diagram  `xml:"diagram"`
}

// Diagram is a single drawio page.
type Diagram struct {
	ID    string     `xml:"id,attr"`
	Name  string     `xml:"name,attr"`
	Model GraphModel `xml:"mxGraphModel"`
}

// GraphModel holds the page settings and the cell tree.
type GraphModel struct {
	DX         int  `xml:"dx,attr"`
	DY         int  `xml:"dy,attr"`
	Grid       int  `xml:"grid,attr"`
	GridSize   int  `xml:"gridSize,attr"`
	Guides     int  `xml:"guides,attr"`
	Tooltips   int  `xml:"tooltips,attr"`
	Connect    int  `xml:"connect,attr"`
	Arrows     int  `xml:"arrows,attr"`
	Fold       int  `xml:"fold,attr"`
	Page       int  `xml:"page,attr"`
	PageScale  int  `xml:"pageScale,attr"`
	PageWidth  int  `xml:"pageWidth,attr"`
	PageHeight int  `xml:"pageHeight,attr"`
	Math       int  `xml:"math,attr"`
	Shadow     int  `xml:"shadow,attr"`
	Root       Root `xml:"root"`
}

// Root contains the two structural cells followed by the image object.
type Root struct {
	Cells      []Cell     `xml:"mxCell"`
	UserObject UserObject `xml:"UserObject"`
}

// Cell is an <mxCell>. Empty attributes are omitted so the structural
// cells carry only id and parent.
type Cell struct {
	ID       string    `xml:"id,attr,omitempty"`
	Style    string    `xml:"style,attr,omitempty"`
	Parent   string    `xml:"parent,attr,omitempty"`
	Vertex   string    `xml:"vertex,attr,omitempty"`
	Geometry *Geometry `xml:"mxGeometry"`
}

// UserObject wraps the image cell and carries the editable source.
type UserObject struct {
	Label        string `xml:"label,attr"`
	PlantUMLData string `xml:"plantUmlData,attr"`
	ID           string `xml:"id,attr"`
	Cell         Cell   `xml:"mxCell"`
}

// Geometry places the image. Width and height stay blank when the
// renderer output did not declare a size.
type Geometry struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	As     string `xml:"as,attr"`
}

// =============================================================================
// Builder
// =============================================================================

// Params are the variable parts of a document.
type Params struct {
	Modified string // formatted with FormatModified
	Source   string // raw diagram source, escaped by NewDocument
	SVG      []byte // rendered image, embedded as a data URI
	Width    string
	Height   string
}

// NewDocument builds the fixed document tree around p.
// The returned tree is not modified by this package afterwards.
func NewDocument(p Params) *MxFile {
	return &MxFile{
		Host:     Host,
		Modified: p.Modified,
		Agent:    AgentName,
		ETag:     ETagID,
		Version:  FileVersion,
		Type:     FileType,
		Diagram: Diagram{
			ID:   DiagramID,
			Name: PageName,
			Model: GraphModel{
				DX: 1219, DY: 1005, Grid: 1, GridSize: 10,
				Guides: 1, Tooltips: 1, Connect: 1, Arrows: 1,
				Fold: 1, Page: 1, PageScale: 1, PageWidth: 850,
				PageHeight: 1100, Math: 0, Shadow: 0,
				Root: Root{
					Cells: []Cell{
						{ID: "0"},
						{ID: "1", Parent: "0"},
					},
					UserObject: UserObject{
						Label:        "",
						PlantUMLData: PlantUMLData(EscapeSource(p.Source)),
						ID:           UserObjectID,
						Cell: Cell{
							Style:  imageStylePrefix + ImageDataURI(p.SVG),
							Parent: "1",
							Vertex: "1",
							Geometry: &Geometry{
								X:      "0",
								Y:      "0",
								Width:  p.Width,
								Height: p.Height,
								As:     "geometry",
							},
						},
					},
				},
			},
		},
	}
}

// Marshal serializes the document without an XML declaration or indentation.
func (f *MxFile) Marshal() ([]byte, error) {
	out, err := xml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal mxfile: %w", err)
	}
	return out, nil
}

// Image returns the image cell inside the document.
func (f *MxFile) Image() *Cell {
	return &f.Diagram.Model.Root.UserObject.Cell
}

// Unmarshal parses a serialized document. It is the inverse of Marshal for
// documents produced by this package.
func Unmarshal(data []byte) (*MxFile, error) {
	var f MxFile
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal mxfile: %w", err)
	}
	return &f, nil
}
