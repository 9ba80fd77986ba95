//go:build !darwin && !linux && !windows

package notify

import "errors"

// notify is unsupported on this platform
func notify(_, _, _ string) error {
	return errors.New("desktop notifications are not supported on this platform")
}
