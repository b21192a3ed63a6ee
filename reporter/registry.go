// Package reporter collects named experiment reports and renders them into figures.
//
// A Registry owns the reports of one run together with its output directory.
// A Composer draws registry contents through a ports.Plotter and persists raw
// values through a ports.Codec. Registries are independent of each other, so
// parallel runs only need one Registry each.
package reporter

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"reportkit/domain/report"
	"reportkit/internal"
	"reportkit/internal/errors"
)

// Registry holds the live reports of one run
type Registry struct {
	id        string
	directory string
	reports   []*report.Report
	logger    *internal.Logger
}

// SetupOption tunes a report at creation time
type SetupOption func(*report.Report)

// WithCapacity pre-sizes the sample buffer of a series report
func WithCapacity(n int) SetupOption {
	return func(r *report.Report) {
		if r.Kind == report.Series && n > 0 {
			r.Values = make([]float64, 0, n)
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(logger *internal.Logger) *Registry {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	id := uuid.NewString()
	return &Registry{
		id:     id,
		logger: logger.With("registry", id),
	}
}

// ID identifies this registry in logs
func (r *Registry) ID() string {
	return r.id
}

// SetOutputDirectory creates path if needed and makes it the destination for
// figures and dumps. Existing content is never removed.
func (r *Registry) SetOutputDirectory(path string) (string, error) {
	if path == "" {
		return "", errors.InvalidInput("output directory cannot be empty")
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", errors.ExternalServiceError("filesystem", err)
	}
	r.directory = filepath.Clean(path)
	r.logger.Debug("output directory set to %s", r.directory)
	return r.directory, nil
}

// OutputDirectory returns the active output root
func (r *Registry) OutputDirectory() string {
	return r.directory
}

// Path joins file onto the active output root
func (r *Registry) Path(file string) string {
	return filepath.Join(r.directory, file)
}

// Setup registers a report. Setting up a name that already exists is a no-op and
// leaves the existing report, values included, untouched.
func (r *Registry) Setup(name, xlabel string, kind report.Kind, opts ...SetupOption) error {
	if len(r.Query(name)) > 0 {
		r.logger.Trace("report %s already set up", name)
		return nil
	}

	rep, err := report.New(name, xlabel, kind)
	if err != nil {
		return errors.Wrapf(err, "failed to set up report %s", name)
	}
	for _, opt := range opts {
		opt(rep)
	}

	r.reports = append(r.reports, rep)
	r.logger.Debug("report %s set up as %s", name, rep.Kind)
	return nil
}

// Append records value on the named report
func (r *Registry) Append(name string, value any) error {
	reports := r.Query(name)
	if len(reports) == 0 {
		return errors.NotFound("report " + name + " (set it up before appending)")
	}
	return reports[0].Append(value)
}

// Query returns the reports whose names are given, in registration order.
// With no names it returns every report. Unknown names are ignored.
func (r *Registry) Query(names ...string) []*report.Report {
	if len(names) == 0 {
		out := make([]*report.Report, len(r.reports))
		copy(out, r.reports)
		return out
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	out := make([]*report.Report, 0, len(names))
	for _, rep := range r.reports {
		if _, ok := wanted[rep.Name]; ok {
			out = append(out, rep)
		}
	}
	return out
}

// Get returns a single report by name
func (r *Registry) Get(name string) (*report.Report, bool) {
	reports := r.Query(name)
	if len(reports) == 0 {
		return nil, false
	}
	return reports[0], true
}

// Names lists registered report names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.reports))
	for i, rep := range r.reports {
		names[i] = rep.Name
	}
	return names
}

// Clear empties the values of the named reports, or of all reports when no names are given
func (r *Registry) Clear(names ...string) {
	for _, rep := range r.Query(names...) {
		rep.Clear()
	}
}

// Reset drops every report
func (r *Registry) Reset() {
	r.reports = nil
	r.logger.Debug("registry reset")
}
