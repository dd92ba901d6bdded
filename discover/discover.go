//go:build linux

// Package discover enumerates candidate USB-to-RS485/serial adapters
// on Linux so a caller can find the device node an Indy R2000 reader
// is attached to without hardcoding /dev/ttyUSB0. It mirrors the
// udev-based USB inventory approach the teacher codebase uses to pair
// USB audio adapters with their GPIO-capable HID siblings.
package discover

import (
	"sort"

	"github.com/jochenvg/go-udev"
)

// Adapter describes one serial device node discovered via udev.
type Adapter struct {
	DevNode      string
	VendorID     string
	ProductID    string
	Manufacturer string
	Product      string
	Serial       string
}

// List enumerates every tty device node backed by a USB device,
// sorted by DevNode for stable output. It returns an empty slice
// (never nil) when udev reports no matches.
func List() ([]Adapter, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("tty"); err != nil {
		return nil, err
	}
	if err := e.AddMatchIsInitialized(); err != nil {
		return nil, err
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, err
	}

	out := make([]Adapter, 0, len(devices))
	for _, d := range devices {
		node := d.Devnode()
		if node == "" {
			continue
		}
		parent := d.ParentWithSubsystemDevtype("usb", "usb_device")
		if parent == nil {
			// Not USB-backed (e.g. an onboard UART); not a candidate
			// adapter for a bus-powered reader.
			continue
		}
		out = append(out, Adapter{
			DevNode:      node,
			VendorID:     parent.PropertyValue("ID_VENDOR_ID"),
			ProductID:    parent.PropertyValue("ID_MODEL_ID"),
			Manufacturer: parent.PropertyValue("ID_VENDOR_ENC"),
			Product:      parent.PropertyValue("ID_MODEL_ENC"),
			Serial:       parent.PropertyValue("ID_SERIAL_SHORT"),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DevNode < out[j].DevNode })
	return out, nil
}
