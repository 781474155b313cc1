//go:build linux

package vdso

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/insanitybit/void-ship/pkg/procmaps"
)

// nativeOps drives the kernel's real memory-management primitives. The
// addresses come from the kernel's own map listing, not from Go pointers,
// hence the direct uintptr conversions.
type nativeOps struct{}

func (nativeOps) Unmap(r Region) error {
	return unix.MunmapPtr(unsafe.Pointer(r.Start), r.Size())
}

func (nativeOps) Guard(r Region) error {
	_, err := unix.MmapPtr(-1, 0, unsafe.Pointer(r.Start), r.Size(),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_FIXED)
	return err
}

func removeTimerMappings(guard bool) error {
	entries, err := procmaps.Self()
	if err != nil {
		return fmt.Errorf("vdso: %w", err)
	}
	return apply(nativeOps{}, locate(entries), guard)
}
