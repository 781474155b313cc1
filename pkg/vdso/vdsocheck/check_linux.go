//go:build linux

package vdsocheck

import (
	"strings"
	"time"

	"github.com/insanitybit/void-ship/pkg/procmaps"
	"github.com/insanitybit/void-ship/pkg/vdso"
)

// TestClock reads the wall clock through the vDSO fast path. Call it only
// after vdso.RemoveTimerMappings or vdso.ReplaceTimerMappings, and only from
// a harness prepared for the process to die: if removal worked, the read
// touches the missing or guarded page and the kernel kills the process with
// SIGSEGV — that is the expected outcome.
//
// Every path that survives the read panics instead of returning:
//
//   - the fast-clock mapping is still present, so removal was never in
//     effect;
//   - the mapping is gone but the read still produced a time, meaning the
//     runtime reached the clock through a syscall fallback and removal did
//     not actually cut the process off.
func TestClock() {
	// time.Now resolves through __vdso_clock_gettime on Linux; with the
	// mapping removed this line does not return.
	now := time.Now()

	entries, err := procmaps.Self()
	if err != nil {
		panic("vdsocheck: clock read succeeded and the map snapshot is unreadable: " + err.Error())
	}
	for _, e := range entries {
		if e.Path == vdso.FastClockLabel || strings.HasPrefix(e.Path, vdso.AuxClockPrefix) {
			panic("vdsocheck: clock read succeeded: " + e.Path + " is still mapped")
		}
	}
	panic("vdsocheck: fast-clock mappings are gone but the clock still read " +
		now.Format(time.RFC3339Nano) + "; a syscall fallback is still serving time")
}
