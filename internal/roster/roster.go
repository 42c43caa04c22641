// Package roster matches astronaut names against a flat text checklist,
// one name per line. It answers a simple curatorial question: which
// checklist names actually appear in the loaded dataset, and which are
// missing from it.
package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

// Load reads the checklist at path. Blank lines are skipped and names are
// whitespace-trimmed; order is preserved.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return names, nil
}

// Result splits a checklist into names present in the directory and names
// absent from it, both in checklist order.
type Result struct {
	Matched []string
	Missing []string
}

// Match checks each checklist name against the astronaut directory by exact
// full-name equality.
func Match(checklist []string, dir dataset.Directory) Result {
	var res Result
	for _, name := range checklist {
		if _, ok := dir[name]; ok {
			res.Matched = append(res.Matched, name)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}
	return res
}
