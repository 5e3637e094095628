package discovery

import (
	"fmt"
	"time"
)

// Adapter describes one USB serial port that may be a bridge adapter.
type Adapter struct {
	// Port is the device path to open (e.g. "/dev/ttyACM0", "COM3").
	Port string

	// VID is the USB vendor ID as a 4-digit hex string (e.g. "2341").
	VID string

	// PID is the USB product ID as a 4-digit hex string (e.g. "8037").
	PID string

	// Serial is the USB serial number, empty if the device reports none.
	Serial string

	// Product is the USB product description, empty if unavailable.
	Product string

	// DiscoveredAt is when the port was enumerated.
	DiscoveredAt time.Time
}

// String returns a human-readable description of the adapter.
func (a *Adapter) String() string {
	if a.Serial != "" {
		return fmt.Sprintf("%s (USB %s:%s, serial %s)", a.Port, a.VID, a.PID, a.Serial)
	}
	return fmt.Sprintf("%s (USB %s:%s)", a.Port, a.VID, a.PID)
}
