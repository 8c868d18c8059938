// Package pkg holds the libraries behind puml2drawio.
//
// # Overview
//
// puml2drawio turns a PlantUML text diagram into a drawio (diagrams.net)
// document. The document embeds the rendered SVG as an image cell and keeps
// the PlantUML source in a user object, so drawio's PlantUML plugin can
// edit the diagram again later.
//
// # Architecture
//
// The data flow is a single linear pass:
//
//	.puml file
//	     ↓
//	[io] (check and read the source)
//	     ↓
//	[plantuml] (render to SVG with the PlantUML jar, read the SVG size)
//	     ↓
//	[drawio] (encode the image, escape the source, build the mxfile tree)
//	     ↓
//	drawio XML on stdout or in a file
//
// [pipeline] runs these steps in order and reports them through the
// [observability] hooks. [errors] carries the coded errors every step
// returns.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(pipeline.Options{Jar: "plantuml.jar"})
//	result, err := runner.Convert(ctx, "sequence.puml")
//	if err != nil {
//	    return err
//	}
//	err = io.ExportDocument(result.Document, "sequence.drawio")
//
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/errors
//
// [io]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/io
// [plantuml]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/plantuml
// [drawio]: https://pkg.go.dev/github.com/matzehuels/puml2drawio/pkg/drawio
package pkg
