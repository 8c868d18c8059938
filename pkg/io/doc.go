// Package io loads diagram sources from disk and writes finished documents.
//
// # Reading
//
// [ReadSource] stats the path before reading it, so a missing file is
// reported as FILE_NOT_FOUND without touching anything else. The text is
// trimmed of surrounding whitespace and the file's modification time is
// kept for the document's "modified" attribute:
//
//	src, err := io.ReadSource("sequence.puml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(src.Text, src.ModTime)
//
// # Writing
//
// [WriteDocument] writes a serialized document followed by a newline to any
// writer (usually os.Stdout). [ExportDocument] is the file-based variant
// used by the --output flag.
package io
