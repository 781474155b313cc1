// Package vdsocheck is the destructive self-test for the vdso package. It
// deliberately reads the clock through the fast path that removal is meant
// to eliminate, so the desired outcome is the death of the calling process.
//
// Nothing in pkg/vdso references this package; importing it is the explicit
// opt-in, and no production code path should ever do so. It exists to be
// called by a verification harness (see cmd/clockcheck) that can tell a
// child killed by SIGSEGV apart from one that panicked or exited normally.
package vdsocheck
