package errors

import (
	"path/filepath"
	"unicode"
)

// ValidatePath rejects paths that are empty or contain control characters
// (including null bytes), which the OS would otherwise reject with a less
// helpful message.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters: %q", path)
		}
	}
	return nil
}

// ValidateOutputPath checks an --output path against the input path.
// Writing the document over the diagram source would destroy the source,
// so the two must differ after cleaning.
func ValidateOutputPath(output, input string) error {
	if err := ValidatePath(output); err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve %s", output)
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve %s", input)
	}
	if out == in {
		return New(ErrCodeInvalidPath, "output %s would overwrite the PlantUML source", output)
	}
	return nil
}
