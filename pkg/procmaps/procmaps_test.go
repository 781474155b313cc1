package procmaps

import (
	"errors"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// --------------------------------------------------------------------------
// ParseMaps
// --------------------------------------------------------------------------

func TestParseMaps(t *testing.T) {
	t.Run("vdso line", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"7f0000000000-7f0000002000 r-xp 00000000 00:00 0 [vdso]\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		e := entries[0]
		if e.Start != 0x7f0000000000 || e.End != 0x7f0000002000 {
			t.Fatalf("bad range: %#x-%#x", e.Start, e.End)
		}
		if e.Path != "[vdso]" {
			t.Fatalf("bad path: %q", e.Path)
		}
		want := Perms{Read: true, Exec: true, Private: true}
		if e.Perms != want {
			t.Fatalf("bad perms: %+v", e.Perms)
		}
		if e.Size() != 0x2000 {
			t.Fatalf("bad size: %#x", e.Size())
		}
	})

	t.Run("file-backed entry keeps every column", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"00400000-00452000 r-xp 00010000 08:02 173521 /usr/bin/dbus-daemon\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := entries[0]
		if e.Offset != 0x10000 {
			t.Fatalf("bad offset: %#x", e.Offset)
		}
		if e.Dev != "08:02" {
			t.Fatalf("bad dev: %q", e.Dev)
		}
		if e.Inode != 173521 {
			t.Fatalf("bad inode: %d", e.Inode)
		}
		if e.Path != "/usr/bin/dbus-daemon" {
			t.Fatalf("bad path: %q", e.Path)
		}
	})

	t.Run("anonymous mapping parses to empty path", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"7f89c0b57000-7f89c0b7a000 rw-p 00000000 00:00 0\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].Path != "" {
			t.Fatalf("expected empty path, got %q", entries[0].Path)
		}
	})

	t.Run("variable whitespace between columns", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"ffffffffff600000-ffffffffff601000   --xp\t00000000  00:00\t 0    [vsyscall]\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := entries[0]
		if e.Path != "[vsyscall]" {
			t.Fatalf("bad path: %q", e.Path)
		}
		if e.Perms.Read || e.Perms.Write || !e.Perms.Exec || !e.Perms.Private {
			t.Fatalf("bad perms: %+v", e.Perms)
		}
	})

	t.Run("pathname containing spaces survives", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"7f0000000000-7f0000001000 r--p 00000000 08:02 99 /tmp/my lib.so (deleted)\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].Path != "/tmp/my lib.so (deleted)" {
			t.Fatalf("bad path: %q", entries[0].Path)
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		snapshot := "0000000000601000-0000000000602000 rw-p 00000000 08:02 1 /bin/a\n" +
			"0000000000400000-0000000000452000 r-xp 00000000 08:02 1 /bin/a\n" +
			"00007ffc8e8df000-00007ffc8e900000 rw-p 00000000 00:00 0 [stack]\n"
		entries, err := ParseMaps(strings.NewReader(snapshot))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		// Deliberately out-of-order input: the parser must not reorder.
		if entries[0].Start != 0x601000 || entries[1].Start != 0x400000 {
			t.Fatalf("entries reordered: %#x, %#x", entries[0].Start, entries[1].Start)
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(
			"\n7f0000000000-7f0000001000 r--p 00000000 00:00 0\n\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("empty input yields no entries", func(t *testing.T) {
		entries, err := ParseMaps(strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected no entries, got %d", len(entries))
		}
	})
}

// --------------------------------------------------------------------------
// malformed input
// --------------------------------------------------------------------------

func TestParseMapsErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"address range missing separator", "7f0000000000 r-xp 00000000 00:00 0 [vdso]"},
		{"start address not hex", "zz-7f0000002000 r-xp 00000000 00:00 0"},
		{"end address not hex", "7f0000000000-zz r-xp 00000000 00:00 0"},
		{"offset not hex", "7f0000000000-7f0000002000 r-xp nope 00:00 0"},
		{"inode not decimal", "7f0000000000-7f0000002000 r-xp 00000000 00:00 abc"},
		{"permission column too short", "7f0000000000-7f0000002000 rw 00000000 00:00 0"},
		{"truncated line", "7f0000000000-7f0000002000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMaps(strings.NewReader(tc.line + "\n"))
			if err == nil {
				t.Fatal("expected an error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if perr.Line != tc.line {
				t.Fatalf("ParseError carries %q, want %q", perr.Line, tc.line)
			}
		})
	}
}

// --------------------------------------------------------------------------
// Self
// --------------------------------------------------------------------------

func TestSelf(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("/proc/self/maps is linux-only")
	}

	entries, err := Self()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one mapping")
	}

	for _, e := range entries {
		if e.End <= e.Start {
			t.Fatalf("non-positive range: %s", e)
		}
	}

	// The kernel emits rows in ascending start order.
	sorted := sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	if !sorted {
		t.Fatal("entries not in ascending start order")
	}
}
