package disk

import "fmt"

// LayoutUnreadableError means the current partition table or mount state
// could not be determined. It aborts the disk subsystem for the run; the
// remaining provisioning steps are unaffected.
type LayoutUnreadableError struct {
	DevicePath string
	Cause      error
}

func (e LayoutUnreadableError) Error() string {
	return fmt.Sprintf("Partition layout of '%s' is unreadable: %s", e.DevicePath, e.Cause)
}

func (e LayoutUnreadableError) Unwrap() error { return e.Cause }

// InsufficientSpaceError means the requested data partition does not fit
// between the current root partition end and the end of the device.
type InsufficientSpaceError struct {
	RequiredSectors uint64
	RootEndSector   uint64
	TotalSectors    uint64
}

func (e InsufficientSpaceError) Error() string {
	return fmt.Sprintf(
		"Insufficient space for new partition: need %d sectors past root end %d, device has %d",
		e.RequiredSectors, e.RootEndSector, e.TotalSectors,
	)
}
