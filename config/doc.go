// Package config persists user settings for the bridge driver.
//
// Settings live in a versioned YAML file in the platform configuration
// directory ($XDG_CONFIG_HOME/busbridge/config.yaml on Linux). The file
// stores host-side conveniences only; nothing in it changes the wire
// protocol or its fixed transport parameters.
//
// # Stored Settings
//
//   - Adapter matcher: an explicit port path, or USB VID/PID/serial used
//     to locate the adapter through the discovery package
//   - Peripherals: a name-to-address book for I2C devices, so callers can
//     say "eeprom" instead of 0x50
//   - Log level: default for logging.Initialize when no level is passed
//     and the environment variable is unset
//
// # Usage Example
//
//	reg, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//
//	addr, ok := reg.PeripheralAddress("eeprom")
//	if !ok {
//	    return fmt.Errorf("no such peripheral")
//	}
//
//	reg.SetPeripheral("sensor", 0x48, "temperature sensor on the dev board")
//	if err := reg.Save(); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// LoadRegistry loads once per process and returns the same instance; Save
// performs an atomic tmp-and-rename write guarded by a file mutex.
package config
