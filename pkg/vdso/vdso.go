package vdso

import (
	"fmt"
	"sort"
	"strings"

	"github.com/insanitybit/void-ship/pkg/procmaps"
)

// Labels the kernel gives the clock mappings in /proc/self/maps.
const (
	// FastClockLabel names the vDSO code mapping.
	FastClockLabel = "[vdso]"

	// AuxClockPrefix matches the clock-data mapping. It is a prefix, not an
	// exact label: kernels up to 6.12 expose a single "[vvar]" region, newer
	// ones split it into "[vvar]" plus "[vvar_vclock]".
	AuxClockPrefix = "[vvar"
)

// Region is one address range scheduled for removal.
type Region struct {
	Start uintptr
	End   uintptr
	Label string
}

// Size returns the length of the range in bytes.
func (r Region) Size() uintptr { return r.End - r.Start }

func (r Region) String() string {
	return fmt.Sprintf("%s %#x-%#x", r.Label, r.Start, r.End)
}

// RemoveTimerMappings unmaps the fast-clock mappings, if any are present.
// After a successful call every clock read through the vDSO path faults;
// only syscall-based reads remain, and those are the caller's filter's
// problem. Absent mappings and unsupported platforms are success.
func RemoveTimerMappings() error {
	return removeTimerMappings(false)
}

// ReplaceTimerMappings unmaps the fast-clock mappings and installs a
// fixed-address, zero-permission mapping over each freed range, so a stale
// code pointer into the old vDSO faults even if something later tries to
// claim the range. Each guard goes in immediately after its region's unmap,
// before the next region is touched.
func ReplaceTimerMappings() error {
	return removeTimerMappings(true)
}

// locate returns the fast-clock regions among entries in ascending start
// order. An empty result is normal: some architectures and statically
// configured kernels never expose these mappings.
func locate(entries []procmaps.Entry) []Region {
	var regions []Region
	for _, e := range entries {
		if e.Path == FastClockLabel || strings.HasPrefix(e.Path, AuxClockPrefix) {
			regions = append(regions, Region{
				Start: uintptr(e.Start),
				End:   uintptr(e.End),
				Label: e.Path,
			})
		}
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
	return regions
}

// memoryOps is the platform surface: exactly the two address-space
// primitives the removal sequence needs.
type memoryOps interface {
	// Unmap removes the mapping covering r.
	Unmap(r Region) error
	// Guard installs a fixed-address PROT_NONE mapping over r.
	Guard(r Region) error
}

// apply runs the removal sequence. Regions must already be in ascending
// address order. With guard set, each region is re-mapped inaccessible
// directly after its unmap — the unmap/guard pair for one region completes
// before the next region is touched, keeping the window in which a freed
// range sits unclaimed as small as two syscalls allow.
//
// The sequence is fail-fast: the first failure stops everything and the
// remaining regions are left mapped. A removal that silently completed
// halfway would let the caller assume safety it does not have.
func apply(ops memoryOps, regions []Region, guard bool) error {
	for _, r := range regions {
		if r.End <= r.Start {
			return fmt.Errorf("vdso: %w: %s", ErrInvalidRegion, r)
		}
		if err := ops.Unmap(r); err != nil {
			return &UnmapError{Region: r, Err: err}
		}
		if guard {
			if err := ops.Guard(r); err != nil {
				return &GuardError{Region: r, Err: err}
			}
		}
	}
	return nil
}
