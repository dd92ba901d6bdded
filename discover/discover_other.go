//go:build !linux

package discover

import "errors"

// Adapter describes one serial device node discovered via udev.
type Adapter struct {
	DevNode      string
	VendorID     string
	ProductID    string
	Manufacturer string
	Product      string
	Serial       string
}

// ErrUnsupported is returned by List on platforms without udev.
var ErrUnsupported = errors.New("discover: udev-based enumeration is only available on linux")

// List is unavailable outside Linux; go-udev binds libudev directly.
func List() ([]Adapter, error) {
	return nil, ErrUnsupported
}
