package store

import "fmt"

// WriteError indica que el store rechazó una inserción.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write on %q: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError indica que una consulta al store falló.
type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store read on %q: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
