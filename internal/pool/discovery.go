// Package pool discovers the eligible workload files and picks the next
// one to rotate to.
//
// The pool is deliberately ephemeral: it is rebuilt by a directory scan
// every time a selection is needed and never cached, so workload files
// added or removed between swaps are observed without a restart.
package pool

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DisallowedExtensions lists file extensions excluded from the pool:
// formats the host cannot auto-detect, plus files the engine itself writes
// next to the workloads.
var DisallowedExtensions = []string{".bin", ".sav", ".srm", ".txt"}

// List scans dir and returns the eligible workload filenames, sorted.
// Entries with a disallowed extension and subdirectories are skipped.
func List(dir string, disallowed []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan workload dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if hasDisallowedExtension(e.Name(), disallowed) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// Name returns the display-level identity of a pool entry: the filename
// with its extension stripped. Two copies of one workload under different
// extensions share a Name.
func Name(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}

func hasDisallowedExtension(file string, disallowed []string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, d := range disallowed {
		if ext == d {
			return true
		}
	}
	return false
}
