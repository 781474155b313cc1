//go:build !linux

package vdsocheck

// TestClock has nothing to demonstrate on platforms without a vDSO: there is
// no mapping whose absence could be verified. It fails loudly rather than
// pretend to have checked anything.
func TestClock() {
	panic("vdsocheck: only meaningful on linux; there is no fast-clock mapping here")
}
