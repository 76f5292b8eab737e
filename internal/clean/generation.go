package clean

import (
	"sort"
	"time"
)

// Generation is one immutable, numbered profile link
// ("<profile-name>-<number>-link") produced by a past activation.
// LastModified is the modification time of the link itself, read without
// following it. Generations are never mutated after construction.
type Generation struct {
	Number       uint64
	LastModified time.Time
	Path         string
}

// TaggedGeneration pairs a generation with its removal flag.
type TaggedGeneration struct {
	Generation
	Remove bool
}

// GenerationPlan is the tagged set of one profile's generations, ordered
// ascending by generation number. Every discovered generation starts out
// flagged for removal; the retention rules only ever clear the flag.
type GenerationPlan []TaggedGeneration

func (p GenerationPlan) sortAscending() {
	sort.Slice(p, func(i, j int) bool {
		a, b := p[i], p[j]
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		if !a.LastModified.Equal(b.LastModified) {
			return a.LastModified.Before(b.LastModified)
		}
		return a.Path < b.Path
	})
}

// ProfilePlan maps a profile path to its generation plan.
type ProfilePlan map[string]GenerationPlan

// SortedProfiles returns the profile paths in lexical order, for
// reproducible presentation and execution.
func (p ProfilePlan) SortedProfiles() []string {
	paths := make([]string, 0, len(p))
	for path := range p {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// TaggedGcRoot pairs an indirect gcroot target with its removal flag.
type TaggedGcRoot struct {
	Target string
	Remove bool
}

// GcRootPlan is the tagged set of gcroot targets, ordered by target path.
// The original registry is unordered; keeping the plan sorted makes output
// and removal order reproducible across runs.
type GcRootPlan []TaggedGcRoot

func (p GcRootPlan) sortByTarget() {
	sort.Slice(p, func(i, j int) bool { return p[i].Target < p[j].Target })
}

// Plan is the complete cleanup plan for one run: the policy it was computed
// under, the active gcroot allow-list patterns, and the tagged entities.
type Plan struct {
	Policy   RetentionPolicy
	Patterns []string
	GcRoots  GcRootPlan
	Profiles ProfilePlan
}
