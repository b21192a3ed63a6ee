package report

// TargetKind distinguishes the two panel shapes a render call accepts
type TargetKind int

const (
	SingleTarget TargetKind = iota
	GroupTarget
)

// Target names what goes on one panel: a single report, or several overlaid reports
type Target struct {
	Kind   TargetKind
	Names  []string
	XLabel string
	YLabel string
}

// Single targets one report drawn on its own panel
func Single(name string) Target {
	return Target{Kind: SingleTarget, Names: []string{name}}
}

// Group targets several reports overlaid on one panel with shared axis labels
func Group(names []string, xlabel, ylabel string) Target {
	return Target{Kind: GroupTarget, Names: names, XLabel: xlabel, YLabel: ylabel}
}

// Singles turns bare report names into single-report targets
func Singles(names ...string) []Target {
	targets := make([]Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, Single(name))
	}
	return targets
}
