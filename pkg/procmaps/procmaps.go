package procmaps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const selfMapsPath = "/proc/self/maps"

// Perms is the decoded permission column of a map row.
type Perms struct {
	Read    bool
	Write   bool
	Exec    bool
	Private bool // "p" flag; false means the mapping is shared
}

// String renders the column the way the kernel prints it ("r-xp").
func (p Perms) String() string {
	b := []byte("----")
	if p.Read {
		b[0] = 'r'
	}
	if p.Write {
		b[1] = 'w'
	}
	if p.Exec {
		b[2] = 'x'
	}
	if p.Private {
		b[3] = 'p'
	} else {
		b[3] = 's'
	}
	return string(b)
}

// Entry is one row of the memory map: a half-open address range plus the
// backing-file columns. Path is empty for anonymous mappings and holds the
// kernel's bracketed pseudo-name ("[heap]", "[vdso]", ...) for special
// regions.
type Entry struct {
	Start  uint64
	End    uint64
	Perms  Perms
	Offset uint64
	Dev    string
	Inode  uint64
	Path   string
}

// Size returns the length of the range in bytes.
func (e Entry) Size() uint64 { return e.End - e.Start }

func (e Entry) String() string {
	return fmt.Sprintf("%x-%x %s %s", e.Start, e.End, e.Perms, e.Path)
}

// ParseError reports a malformed map row. Line is the offending input line,
// verbatim.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("procmaps: malformed line %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Self reads and parses the calling process's own memory map.
func Self() ([]Entry, error) {
	f, err := os.Open(selfMapsPath)
	if err != nil {
		return nil, fmt.Errorf("procmaps: open %s: %w", selfMapsPath, err)
	}
	defer f.Close()
	return ParseMaps(f)
}

// ParseMaps parses a memory-map listing in the kernel's columnar format,
// one mapping per line, preserving input order. Blank lines are skipped.
// Any malformed row aborts the parse with a *ParseError.
func ParseMaps(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("procmaps: read: %w", err)
	}
	return entries, nil
}

// parseLine decodes one row. The five fixed columns are separated by runs
// of spaces or tabs; the optional pathname is whatever remains, trimmed,
// so paths containing spaces survive intact.
func parseLine(line string) (Entry, error) {
	var e Entry
	var err error

	addr, rest := nextColumn(line)
	start, end, found := strings.Cut(addr, "-")
	if !found {
		return e, errors.New("address range missing separator")
	}
	if e.Start, err = strconv.ParseUint(start, 16, 64); err != nil {
		return e, fmt.Errorf("start address: %w", err)
	}
	if e.End, err = strconv.ParseUint(end, 16, 64); err != nil {
		return e, fmt.Errorf("end address: %w", err)
	}

	perms, rest := nextColumn(rest)
	if len(perms) < 4 {
		return e, fmt.Errorf("permission column %q too short", perms)
	}
	e.Perms = Perms{
		Read:    perms[0] == 'r',
		Write:   perms[1] == 'w',
		Exec:    perms[2] == 'x',
		Private: perms[3] == 'p',
	}

	offset, rest := nextColumn(rest)
	if e.Offset, err = strconv.ParseUint(offset, 16, 64); err != nil {
		return e, fmt.Errorf("offset: %w", err)
	}

	dev, rest := nextColumn(rest)
	if dev == "" {
		return e, errors.New("device column missing")
	}
	e.Dev = dev

	inode, rest := nextColumn(rest)
	if e.Inode, err = strconv.ParseUint(inode, 10, 64); err != nil {
		return e, fmt.Errorf("inode: %w", err)
	}

	e.Path = strings.TrimSpace(rest)
	return e, nil
}

// nextColumn splits off the leading whitespace-delimited token.
func nextColumn(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
