// Package r2000 implements the host-side driver core for the Impinj
// Indy R2000 UHF RFID reader family's binary serial interface
// protocol, carried over an RS-485/UART link.
//
// The driver is a framed request/response engine: callers issue typed
// commands (SetWorkingAntenna, StartRealTimeInventory, ReadTags, ...)
// that are serialized, framed, and written to a caller-supplied byte
// sink; inbound bytes delivered by the caller through Feed are framed,
// classified, and either routed back to the command that is awaiting a
// reply or delivered as an unsolicited tag/antenna event.
//
// The transport itself — opening a serial port, changing its baud
// rate, or doing anything RS-485-multipoint-specific — is the caller's
// responsibility; Reader only needs something that implements Sink.
package r2000
