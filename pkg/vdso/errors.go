package vdso

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion reports a candidate region whose length is not strictly
// positive. It means the map snapshot was internally inconsistent; the
// region is never handed to the kernel.
var ErrInvalidRegion = errors.New("region has non-positive length")

// UnmapError reports that a fast-clock region could not be unmapped. Regions
// after it were left untouched.
type UnmapError struct {
	Region Region
	Err    error
}

func (e *UnmapError) Error() string {
	return fmt.Sprintf("vdso: munmap %s: %v", e.Region, e.Err)
}

func (e *UnmapError) Unwrap() error { return e.Err }

// GuardError reports that the guard mapping could not be installed after its
// region was already unmapped. This is strictly worse than an UnmapError:
// the freed range is no longer mapped but also not secured, so the process
// is in an unverified state. Callers should terminate rather than continue.
type GuardError struct {
	Region Region
	Err    error
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("vdso: guard mapping over %s failed after unmap: %v", e.Region, e.Err)
}

func (e *GuardError) Unwrap() error { return e.Err }
