// Package plantuml runs the PlantUML renderer and reads the size of the
// SVG it produces.
//
// # Rendering
//
// [JarRenderer] runs PlantUML as a child process:
//
//	java -jar plantuml.jar -tsvg -pipe
//
// The diagram source is written to the process's stdin and the SVG is read
// from its stdout. Every call is bounded by a deadline (10s by default).
// When the deadline passes the process is killed and reaped, and Render
// returns a RENDER_TIMEOUT error.
//
// The renderer's exit status is ignored unless Strict is set: PlantUML
// writes an error image for most syntax problems, so a non-zero exit still
// yields something worth embedding.
//
// # Geometry
//
// PlantUML writes the diagram size into the root element's style:
//
//	<svg ... style="width:120px;height:80px;background:#FFFFFF;">
//
// [ExtractGeometry] returns those two numbers as strings, or two empty
// strings when the declaration is missing.
package plantuml
