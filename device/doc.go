// Package device implements the generic command dispatcher for the bridge
// adapter, plus the auxiliary operations every bus mode shares.
//
// # Dispatcher
//
// Client.Call is the single primitive all traffic goes through: encode one
// request frame, write it, decode exactly one response frame. The wire
// protocol carries no request identifiers, so a client never has more than
// one request in flight; Call holds a mutex for the full exchange to keep
// that true under concurrent callers.
//
// Call does not interpret the status byte. Which statuses count as success
// varies per operation, so interpretation belongs to the operation methods
// here and in the i2c package.
//
// # Auxiliary Operations
//
// Version, BusType, the debug dumps and the GPIO pin controls are defined
// by the firmware as unconditionally successful: any non-ok status is a
// contract violation (protocol.IsContractViolation), not a bus condition.
//
// # Usage Example
//
//	session, err := transport.Open("/dev/ttyACM0")
//	if err != nil {
//	    return err
//	}
//	dev := device.NewClient(session)
//	defer dev.Close()
//
//	fw, err := dev.Version()
//	if err != nil {
//	    return err
//	}
//	fmt.Println("firmware:", fw)
//
// # Thread Safety
//
// All methods are safe for concurrent use; the mutex serializes exchanges.
package device
