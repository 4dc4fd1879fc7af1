package kv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// linePattern matches one persisted entry. Keys are word characters only;
// anything else on the line (blank lines, comments, junk) is skipped.
var linePattern = regexp.MustCompile(`^(\w+):\s*(.*?)\s*$`)

// Load reads the key-value file at path.
//
// A missing file is not an error: Load returns (nil, false, nil) so callers
// can fall back to defaults or a fresh record. Lines that do not match the
// KEY: VALUE pattern are silently skipped.
func Load(path string) (map[string]Value, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[string]Value)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := linePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		entries[m[1]] = Decode(m[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	return entries, true, nil
}

// Save writes entries to path, one KEY: VALUE line per entry, truncating
// any existing file. Keys are written in sorted order so the file is stable
// across saves. The parent directory is created if needed.
func Save(path string, entries map[string]Value) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(entries[k].Encode())
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
