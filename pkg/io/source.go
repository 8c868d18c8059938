package io

import (
	"os"
	"strings"
	"time"

	"github.com/matzehuels/puml2drawio/pkg/errors"
)

// Source is the diagram source text of one input file.
// It is immutable once read.
type Source struct {
	Path    string    // path as given on the command line
	Text    string    // file content with surrounding whitespace trimmed
	ModTime time.Time // last modification time of the file
}

// CheckSource reports whether path names an existing regular file without
// reading it. It returns the same FILE_NOT_FOUND error as [ReadSource].
func CheckSource(path string) error {
	_, err := statSource(path)
	return err
}

// ReadSource loads the PlantUML file at path.
//
// The path is checked before reading: a missing path or a directory is
// reported as [errors.ErrCodeFileNotFound]. Other failures are wrapped as
// [errors.ErrCodeIO].
func ReadSource(path string) (*Source, error) {
	info, err := statSource(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	return &Source{
		Path:    path,
		Text:    strings.TrimSpace(string(data)),
		ModTime: info.ModTime(),
	}, nil
}

func statSource(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "PlantUML file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeFileNotFound, "PlantUML file not found: %s is a directory", path)
	}
	return info, nil
}
