package discovery

import (
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial/enumerator"
)

// Filter narrows an adapter scan. Empty fields match anything; VID and PID
// compare case-insensitively.
type Filter struct {
	VID    string
	PID    string
	Serial string
}

// Matches reports whether the adapter satisfies every set field.
func (f Filter) Matches(a *Adapter) bool {
	if f.VID != "" && !strings.EqualFold(f.VID, a.VID) {
		return false
	}
	if f.PID != "" && !strings.EqualFold(f.PID, a.PID) {
		return false
	}
	if f.Serial != "" && f.Serial != a.Serial {
		return false
	}
	return true
}

// ListAdapters returns every USB-backed serial port on the host.
func ListAdapters() ([]*Adapter, error) {
	return FindAdapters(Filter{})
}

// FindAdapters returns the USB serial ports matching the filter.
func FindAdapters(f Filter) ([]*Adapter, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	adapters := make([]*Adapter, 0)
	for _, port := range ports {
		adapter := parsePortDetails(port)
		if adapter != nil && f.Matches(adapter) {
			adapters = append(adapters, adapter)
		}
	}
	return adapters, nil
}

// FindFirst returns the first adapter matching the filter, or an error if
// none is attached.
func FindFirst(f Filter) (*Adapter, error) {
	adapters, err := FindAdapters(f)
	if err != nil {
		return nil, err
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no matching adapter found")
	}
	return adapters[0], nil
}

// parsePortDetails converts an enumerated port to an Adapter. Returns nil
// for ports that are not USB-backed; the bridge always enumerates over
// USB, so bare UARTs are never candidates.
func parsePortDetails(details *enumerator.PortDetails) *Adapter {
	if details == nil || !details.IsUSB || details.Name == "" {
		return nil
	}

	return &Adapter{
		Port:         details.Name,
		VID:          details.VID,
		PID:          details.PID,
		Serial:       details.SerialNumber,
		Product:      details.Product,
		DiscoveredAt: time.Now(),
	}
}
