package export

import (
	"fmt"
	"os"

	"github.com/tubelist-cli/tubelist/filesystem"
	"github.com/tubelist-cli/tubelist/source"
)

// filePerm is the mode of a freshly written document.
const filePerm os.FileMode = 0o644

// WriteError reports that the document could not be produced at its destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write replaces destination with the JSON document for records.
// The file is swapped in atomically; on failure any previous file is left untouched.
func Write(records []source.Record, destination string) error {
	data, err := Encode(records)
	if err != nil {
		return &WriteError{Path: destination, Err: fmt.Errorf("encode: %w", err)}
	}

	if err := filesystem.WriteAtomic(destination, data, filePerm); err != nil {
		return &WriteError{Path: destination, Err: err}
	}

	return nil
}
