// Package drawio assembles drawio (diagrams.net) documents that embed a
// rendered PlantUML diagram together with its source.
//
// # Document Shape
//
// The output is always a single-page file with one image cell wrapped in a
// UserObject. The UserObject's plantUmlData attribute carries the escaped
// source so drawio's PlantUML plugin can reopen the diagram for editing:
//
//	<mxfile host="app.diagrams.net" modified="..." agent="..." etag="..." version="20.0.1" type="embed">
//	  <diagram id="..." name="Page-1">
//	    <mxGraphModel dx="1219" dy="1005" ...>
//	      <root>
//	        <mxCell id="0"/>
//	        <mxCell id="1" parent="0"/>
//	        <UserObject label="" plantUmlData="..." id="...">
//	          <mxCell style="shape=image;...;image=data:image/svg+xml,..." parent="1" vertex="1">
//	            <mxGeometry x="0" y="0" width="..." height="..." as="geometry"/>
//	          </mxCell>
//	        </UserObject>
//	      </root>
//	    </mxGraphModel>
//	  </diagram>
//	</mxfile>
//
// The tree is built from typed structs, so attribute order is fixed by
// field order. Identifier constants ([AgentName], [ETagID], [DiagramID],
// [UserObjectID]) are reproduced byte-for-byte because existing tooling
// matches on them.
//
// # Encodings
//
//   - [EscapeSource] makes the diagram text safe as a single-line string
//     inside an XML attribute.
//   - [ImageDataURI] base64-encodes the SVG into a data URI.
//   - [FormatModified] renders a file time as an ISO-8601 UTC timestamp.
//
// # Usage
//
//	doc := drawio.NewDocument(drawio.Params{
//	    Modified: drawio.FormatModified(src.ModTime),
//	    Source:   src.Text,
//	    SVG:      svg,
//	    Width:    "120",
//	    Height:   "80",
//	})
//	out, err := doc.Marshal()
package drawio
