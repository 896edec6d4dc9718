package engine

import (
	"strings"

	"github.com/arthur-debert/mtr/pkg/errors"
)

type color int

const (
	white color = iota // not seen
	gray               // in progress
	black              // done
)

// visitTracker colors the nodes of one top-level request
type visitTracker struct {
	colors map[string]color
	path   []string
}

func newVisitTracker() *visitTracker {
	return &visitTracker{colors: make(map[string]color)}
}

// enter marks id as in progress, failing if it already is
func (v *visitTracker) enter(id string) error {
	if v.colors[id] == gray {
		return v.cycleError(id)
	}
	v.colors[id] = gray
	v.path = append(v.path, id)
	return nil
}

// inProgress reports whether id is on the current path
func (v *visitTracker) inProgress(id string) bool {
	return v.colors[id] == gray
}

// leave marks id as done
func (v *visitTracker) leave(id string) {
	v.colors[id] = black
	if n := len(v.path); n > 0 && v.path[n-1] == id {
		v.path = v.path[:n-1]
	}
}

func (v *visitTracker) state(id string) color {
	return v.colors[id]
}

func (v *visitTracker) cycleError(id string) error {
	start := 0
	for i, p := range v.path {
		if p == id {
			start = i
			break
		}
	}
	cycle := append(append([]string{}, v.path[start:]...), id)

	return errors.Newf(errors.ErrCycleDetected, "dependency cycle detected: %s", strings.Join(cycle, " -> ")).
		WithDetails(map[string]interface{}{
			"package": id,
			"cycle":   cycle,
		})
}
