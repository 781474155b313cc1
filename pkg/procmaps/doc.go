// Package procmaps parses the kernel's per-process memory map listing
// (/proc/self/maps) into structured entries. Every call reads a fresh
// snapshot; nothing is cached, because the map changes underneath the
// process as it runs.
//
// The parser preserves the kernel's row order and makes no claims about
// the ranges themselves (overlap, alignment): it reports what the kernel
// reports.
package procmaps
