//go:build tinygo

package rawprint

import (
	"machine"
)

// tinygoSPI wraps a machine.SPI to satisfy the Bus interface.
type tinygoSPI struct {
	spi *machine.SPI
	cs  machine.Pin
}

func (s *tinygoSPI) Tx(w, r []byte) error {
	s.cs.Low()
	err := s.spi.Tx(w, r)
	s.cs.High()
	return err
}

// NewTinyGoSPI returns a writer for a debug port on an already configured
// SPI peripheral, selected by csPin.
func NewTinyGoSPI(spi *machine.SPI, csPin machine.Pin) *BusWriter {
	// Configure CS pin as output and set high (inactive)
	csPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	csPin.High()

	return NewBusWriter(&tinygoSPI{spi: spi, cs: csPin})
}
