package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
)

// stdio is the path that selects stdin or stdout.
const stdio = errors.StdioPath

// openInput opens path for reading, or stdin for "-".
func (c *CLI) openInput(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(c.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open input")
	}
	return f, nil
}

// outputFile is a destination that can be abandoned: a file created for
// output is removed again when the conversion fails.
type outputFile struct {
	w    io.Writer
	file *os.File
}

// createOutput creates path for writing, or wraps stdout for "-".
func (c *CLI) createOutput(path string) (*outputFile, error) {
	if path == stdio {
		return &outputFile{w: c.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output")
	}
	return &outputFile{w: f, file: f}, nil
}

func (o *outputFile) Write(p []byte) (int, error) { return o.w.Write(p) }

// finish closes the file and removes it if err is non-nil. It returns err,
// or the close error when err is nil.
func (o *outputFile) finish(err error) error {
	if o.file == nil {
		return err
	}
	closeErr := o.file.Close()
	if err != nil {
		os.Remove(o.file.Name())
		return err
	}
	return errors.IO(closeErr, "close output")
}

// derivePath replaces the extension of input with the one for format.
func derivePath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
