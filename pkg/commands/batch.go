package commands

import (
	"github.com/arthur-debert/mtr/pkg/errors"
)

// Failure records why one requested package failed
type Failure struct {
	Name string
	Err  error
}

// BatchResult collects the outcome of a multi-package command
type BatchResult struct {
	Succeeded []string
	Failed    []Failure
}

func (r *BatchResult) record(name string, err error) {
	if err != nil {
		r.Failed = append(r.Failed, Failure{Name: name, Err: err})
		return
	}
	r.Succeeded = append(r.Succeeded, name)
}

// Err summarizes the failures, or returns nil if every package succeeded.
// The summary carries the code of the first failure.
func (r *BatchResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	first := r.Failed[0]
	total := len(r.Failed) + len(r.Succeeded)
	return errors.Wrapf(first.Err, errors.GetErrorCode(first.Err), "%d of %d packages failed", len(r.Failed), total).
		WithDetail("failed", r.failedNames())
}

func (r *BatchResult) failedNames() []string {
	names := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		names[i] = f.Name
	}
	return names
}
