package drawio

import (
	"encoding/base64"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alice", "Alice"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "Alice->Bob", "Alice-&gt;Bob"},
		{"quotes", `say "hi" it's`, "say &quot;hi&quot; it&apos;s"},
		{"existing entity escaped again", "&lt;", "&amp;lt;"},
		{"lf", "a\nb", `a\nb`},
		{"crlf", "a\r\nb", `a\nb`},
		{"cr", "a\rb", `a\nb`},
		{"mixed line endings", "a\r\nb\nc\rd", `a\nb\nc\nd`},
		{"lf then cr", "\n\r", `\n\n`},
		{"cr then crlf", "\r\r\n", `\n\n`},
		{"tab", "\tnote", `\tnote`},
		{
			"sequence diagram",
			"@startuml\nAlice->Bob: hi\n@enduml",
			`@startuml\nAlice-&gt;Bob: hi\n@enduml`,
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeSource(tt.in))
		})
	}
}

var entityRe = regexp.MustCompile(`&(amp|lt|gt|quot|apos);`)

func TestEscapeSourceLeavesNoReservedCharacters(t *testing.T) {
	inputs := []string{
		"@startuml\r\nclass A<T> {\n\t+\"name\": 'x' & y\r}\n@enduml",
		"&&&<<<>>>\"\"\"'''",
		"\t\t\r\n\r\n\n\n\r\r",
	}

	for _, in := range inputs {
		out := EscapeSource(in)
		stripped := entityRe.ReplaceAllString(out, "")
		assert.NotRegexp(t, "[&<>\"'\r\n\t]", stripped, "input %q produced %q", in, out)
	}
}

func TestPlantUMLData(t *testing.T) {
	got := PlantUMLData(`@startuml\nA-&gt;B\n@enduml`)
	want := "{\n  \"data\": \"@startuml\\nA-&gt;B\\n@enduml\",\n  \"format\": \"svg\"\n}"
	assert.Equal(t, want, got)
}

func TestImageDataURI(t *testing.T) {
	svg := []byte(`<svg style="width:10px;height:20px;"/>`)

	uri := ImageDataURI(svg)
	require.Regexp(t, `^data:image/svg\+xml,`, uri)

	payload := uri[len("data:image/svg+xml,"):]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, svg, decoded)
}

func TestEncodeImageEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeImage(nil))
	assert.Equal(t, "data:image/svg+xml,", ImageDataURI(nil))
}

func TestFormatModified(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"epoch utc", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01T00:00:00.000Z"},
		{"milliseconds kept", time.Date(2024, 3, 5, 7, 8, 9, 123456789, time.UTC), "2024-03-05T07:08:09.123Z"},
		{
			"converted to utc",
			time.Date(2024, 1, 1, 2, 30, 0, 0, time.FixedZone("CEST", 2*60*60)),
			"2024-01-01T00:30:00.000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatModified(tt.in))
		})
	}
}
