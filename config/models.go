package config

import "github.com/muurk/busbridge/discovery"

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                    `yaml:"version"`
	LogLevel    string                 `yaml:"log_level,omitempty"`
	Adapter     *AdapterPrefs          `yaml:"adapter,omitempty"`
	Peripherals map[string]*Peripheral `yaml:"peripherals,omitempty"` // Keyed by user-chosen name
}

// AdapterPrefs selects which USB adapter to open. An explicit Port wins;
// otherwise the USB descriptor fields feed a discovery filter.
type AdapterPrefs struct {
	Port   string `yaml:"port,omitempty"`   // Explicit device path (e.g. "/dev/ttyACM0")
	VID    string `yaml:"vid,omitempty"`    // USB vendor ID, 4-digit hex
	PID    string `yaml:"pid,omitempty"`    // USB product ID, 4-digit hex
	Serial string `yaml:"serial,omitempty"` // USB serial number
}

// Filter converts the matcher fields to a discovery filter.
func (p *AdapterPrefs) Filter() discovery.Filter {
	return discovery.Filter{
		VID:    p.VID,
		PID:    p.PID,
		Serial: p.Serial,
	}
}

// Peripheral is one named I2C device on the bus.
type Peripheral struct {
	Address uint8  `yaml:"address"`         // 7-bit I2C address
	Notes   string `yaml:"notes,omitempty"` // Free-form description
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Peripherals: make(map[string]*Peripheral),
	}
}

// PeripheralAddress looks up the I2C address of a named peripheral.
func (r *Registry) PeripheralAddress(name string) (uint8, bool) {
	p, ok := r.Peripherals[name]
	if !ok {
		return 0, false
	}
	return p.Address, true
}

// SetPeripheral adds or replaces a named peripheral entry.
func (r *Registry) SetPeripheral(name string, address uint8, notes string) {
	if r.Peripherals == nil {
		r.Peripherals = make(map[string]*Peripheral)
	}
	r.Peripherals[name] = &Peripheral{
		Address: address,
		Notes:   notes,
	}
}

// RemovePeripheral deletes a named peripheral entry if present.
func (r *Registry) RemovePeripheral(name string) {
	delete(r.Peripherals, name)
}

// EnsureAdapter returns the adapter preferences, creating an empty entry
// when none is configured yet.
func (r *Registry) EnsureAdapter() *AdapterPrefs {
	if r.Adapter == nil {
		r.Adapter = &AdapterPrefs{}
	}
	return r.Adapter
}
