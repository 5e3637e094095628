// Package discovery locates USB-attached bridge adapters before a serial
// session is opened.
//
// The adapter enumerates as a USB CDC-ACM serial port, so discovery is a
// walk over the host's serial ports filtered down to USB devices:
//
//  1. List the host's serial ports with their USB descriptors
//  2. Keep the USB-backed ones, captured as Adapter records
//  3. Optionally narrow by VID, PID or serial number with a Filter
//
// # Usage Example
//
//	// All candidate adapters on the host.
//	adapters, err := discovery.ListAdapters()
//
//	// Or the first adapter matching a known VID/PID.
//	adapter, err := discovery.FindFirst(discovery.Filter{VID: "2341", PID: "8037"})
//	if err != nil {
//	    return err
//	}
//	session, err := transport.Open(adapter.Port)
//
// # Adapter Information
//
// Each Adapter carries:
//   - Port: the device path to hand to transport.Open (e.g. "/dev/ttyACM0")
//   - VID, PID: USB vendor and product identifiers as 4-digit hex strings
//   - Serial: USB serial number, when the device reports one
//   - Product: USB product description, when available
//
// VID and PID comparisons are case-insensitive; enumeration casing differs
// per platform.
package discovery
