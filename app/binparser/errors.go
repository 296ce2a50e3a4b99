package binparser

// InputError indicates the input file cannot be opened or is malformed.
// No output file is produced.
type InputError struct {
	Filename string
	Err      error
}

func (e *InputError) Error() string {
	return "input " + e.Filename + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError indicates the report cannot be written.
// The output file may be partially written.
type OutputError struct {
	Filename string
	Err      error
}

func (e *OutputError) Error() string {
	return "output " + e.Filename + ": " + e.Err.Error()
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
