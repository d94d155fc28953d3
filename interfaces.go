package rawprint

import "io"

// Bus represents a generic SPI connection, such as a periph.io spi.Conn or
// a TinyGo SPI peripheral behind a chip select.
type Bus interface {
	// Tx sends w and reads into r.
	// r may be nil when nothing is read back.
	Tx(w, r []byte) error
}

// BusWriter turns a Bus into an io.Writer for Fprint and Fprintln, so the
// same single-write output can go to a debug port on a bus. Each Write is
// exactly one Tx.
type BusWriter struct {
	bus    Bus
	closer io.Closer
}

// NewBusWriter returns a writer that transmits on b.
func NewBusWriter(b Bus) *BusWriter {
	return &BusWriter{bus: b}
}

func (w *BusWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := w.bus.Tx(p, nil); err != nil {
		return 0, &busError{err: err}
	}
	return len(p), nil
}

// Close releases the port the writer was opened on, if any.
func (w *BusWriter) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	if err != nil {
		globalLogger.Warn("Failed to close SPI port")
		return err
	}
	globalLogger.Info("SPI bus closed.")
	return nil
}

// busError matches both ErrBus and the error the bus returned.
type busError struct {
	err error
}

func (e *busError) Error() string   { return ErrBus.Error() + ": " + e.err.Error() }
func (e *busError) Unwrap() []error { return []error{ErrBus, e.err} }
