package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/puml2drawio/pkg/errors"
)

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.puml")
	require.NoError(t, os.WriteFile(path, []byte("\n  @startuml\nAlice->Bob: hi\n@enduml\n\n"), 0644))
	mtime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	src, err := ReadSource(path)
	require.NoError(t, err)

	assert.Equal(t, "@startuml\nAlice->Bob: hi\n@enduml", src.Text)
	assert.True(t, src.ModTime.Equal(mtime), "ModTime = %v, want %v", src.ModTime, mtime)
	assert.Equal(t, path, src.Path)
}

func TestReadSourceNotFound(t *testing.T) {
	tests := []struct {
		name string
		path func(dir string) string
	}{
		{"missing file", func(dir string) string { return filepath.Join(dir, "missing.puml") }},
		{"directory", func(dir string) string { return dir }},
		{"empty path", func(string) string { return "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSource(tt.path(t.TempDir()))
			assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
		})
	}
}

func TestCheckSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.puml")
	require.NoError(t, os.WriteFile(path, []byte("@startuml\n@enduml"), 0644))

	assert.NoError(t, CheckSource(path))
	assert.True(t, errors.IsNotFound(CheckSource(filepath.Join(dir, "b.puml"))))
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument([]byte("<mxfile />"), &buf))
	assert.Equal(t, "<mxfile />\n", buf.String())
}

func TestExportDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.drawio")

	require.NoError(t, ExportDocument([]byte("<mxfile />"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<mxfile />\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(documentPerm), info.Mode().Perm())

	assertOnlyEntries(t, dir, "out.drawio")
}

func TestExportDocumentReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.drawio")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one"), 0644))

	require.NoError(t, ExportDocument([]byte("<mxfile />"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<mxfile />\n", string(data))
	assertOnlyEntries(t, dir, "out.drawio")
}

func TestExportDocumentBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.drawio")

	err := ExportDocument([]byte("x"), path)
	assert.True(t, errors.Is(err, errors.ErrCodeIO), "got %v", err)
}

func TestExportDocumentFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target makes the final rename fail after
	// the document has been written.
	target := filepath.Join(dir, "out.drawio")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	err := ExportDocument([]byte("<mxfile />"), target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeIO), "got %v", err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "target must be left untouched")
	assertOnlyEntries(t, dir, "out.drawio")
}

// assertOnlyEntries checks that dir holds exactly the named entries, which
// catches leftover temporary files.
func assertOnlyEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, names, got)
}
