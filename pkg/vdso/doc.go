// Package vdso removes the kernel's fast-clock mappings — the [vdso] code
// page and its [vvar] clock-data companion — from the calling process's own
// address space. Those mappings are what lets user code read an accurate
// clock without a syscall; a process that is about to confine itself behind
// a syscall filter blocking clock_gettime must also lose them, or the filter
// is pointless and timing side channels stay open.
//
// RemoveTimerMappings unmaps the regions. ReplaceTimerMappings additionally
// re-maps each freed range as a zero-permission guard, so any later access
// faults deterministically even if something tries to reclaim the range.
// A missing mapping is success, and on non-Linux platforms (which have no
// vDSO concept) both calls are unconditional no-op successes.
//
// Preconditions the caller owns: the process must still be single-threaded
// with respect to application code, and nothing else may be mutating the
// address space — the package takes no locks. Note that a stock Go runtime
// reads the clock from its own service threads, so in an ordinary Go process
// a successful removal is followed promptly by a fault; the primitive is for
// processes that are done with time, typically immediately before entering a
// filtered, clock-free execution phase.
//
// Failures are not retried and should be treated as fatal to the caller's
// security assumptions: an *UnmapError means nothing past the named region
// was touched, and a *GuardError means a range was unmapped but never
// re-secured, which is strictly worse.
package vdso
