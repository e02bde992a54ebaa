package scaffold

import "fmt"

// ExistsError is returned when the target directory already exists and
// overwrite was not requested. Recoverable: re-invoke with overwrite.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("directory %q already exists (use --overwrite to replace it)", e.Path)
}

// IOError is a filesystem failure while creating the directory or writing a
// file, distinct from the existence conflict.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
