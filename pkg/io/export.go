package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/puml2drawio/pkg/errors"
)

// documentPerm is the mode of exported documents.
const documentPerm = 0o644

// WriteDocument writes a serialized document to w followed by a newline.
func WriteDocument(doc []byte, w io.Writer) error {
	if _, err := w.Write(doc); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write document")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write document")
	}
	return nil
}

// ExportDocument writes a serialized document to the file at path.
//
// The document is written to a temporary file next to path and renamed
// into place, so a failed export never leaves a truncated file behind.
func ExportDocument(doc []byte, path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := WriteDocument(doc, f); err != nil {
		return err
	}
	if err := f.Chmod(documentPerm); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "chmod %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
