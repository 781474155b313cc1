//go:build linux

// Command clockcheck is a destructive verification harness. It removes the
// kernel clock mappings from its own address space, reports what survived in
// /proc/self/maps, then tries to read the clock anyway.
//
// The expected result is that the process dies with SIGSEGV at the final
// step (or earlier, once the Go runtime's own service threads touch the
// clock). A normal exit means removal did not take effect. Run it under a
// supervisor that inspects the wait status; never run it in a process you
// care about.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/insanitybit/void-ship/pkg/procmaps"
	"github.com/insanitybit/void-ship/pkg/vdso"
	"github.com/insanitybit/void-ship/pkg/vdso/vdsocheck"
	"github.com/insanitybit/void-ship/pkg/version"
)

func main() {
	mode := flag.String("mode", "replace",
		`"replace" installs guard pages over the freed ranges, "remove" only unmaps`)
	flag.Parse()

	fmt.Printf("clockcheck %s\n", version.String())
	fmt.Printf("before: %s\n", labelList())

	var err error
	switch *mode {
	case "remove":
		err = vdso.RemoveTimerMappings()
	case "replace":
		err = vdso.ReplaceTimerMappings()
	default:
		fmt.Fprintf(os.Stderr, "clockcheck: unknown -mode %q\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "clockcheck: %v\n", err)
		os.Exit(1)
	}

	// Output past this point is best-effort: the runtime may fault on its
	// own clock reads before these lines flush.
	fmt.Printf("after:  %s\n", labelList())
	fmt.Println("reading the clock; the process should now die with SIGSEGV")

	vdsocheck.TestClock()
}

// labelList reports which fast-clock labels are currently present in this
// process's map.
func labelList() string {
	entries, err := procmaps.Self()
	if err != nil {
		return "(map unreadable: " + err.Error() + ")"
	}
	var labels []string
	for _, e := range entries {
		if e.Path == vdso.FastClockLabel || strings.HasPrefix(e.Path, vdso.AuxClockPrefix) {
			labels = append(labels, e.Path)
		}
	}
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, " ")
}
