//go:build !windows

package console

// EnableANSI is a no-op outside Windows; every other supported terminal
// interprets escape sequences natively.
func EnableANSI() error {
	return nil
}
