package storagesafe

// WriteError reports a failed Set: either the value could not be
// encoded or the host store rejected the write. The underlying cause is
// available via Unwrap.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return "Failed to set item: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError reports a failed Get: either the host read failed or the
// stored text could not be decoded. The underlying cause is available
// via Unwrap.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return "Failed to get item: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
