package packages

// Matches reports whether p is the named package at an acceptable version.
func (r PackageRange) Matches(p PackageVersion) bool {
	return r.Name == p.Name && r.Range.Contains(p.Version)
}

func (r PackageRange) String() string {
	if r.Range.IsAny() {
		return r.Name
	}
	return r.Name + " (" + r.Range.String() + ")"
}

func (p PackageVersion) String() string {
	if p.Version.IsZero() {
		return p.Name
	}
	return p.Name + " (= " + p.Version.String() + ")"
}

// SatisfiedBy reports whether at least one alternative is available.
// An empty group can never be satisfied.
func (a Alternatives) SatisfiedBy(available []PackageVersion) bool {
	for _, r := range a {
		for _, p := range available {
			if r.Matches(p) {
				return true
			}
		}
	}
	return false
}

// SatisfiedBy reports whether every group has an available alternative.
func (d Dependencies) SatisfiedBy(available []PackageVersion) bool {
	return len(d.Unsatisfied(available)) == 0
}

// Unsatisfied returns the groups that have no available alternative,
// in their original order.
func (d Dependencies) Unsatisfied(available []PackageVersion) Dependencies {
	var out Dependencies
	for _, group := range d {
		if !group.SatisfiedBy(available) {
			out = append(out, group)
		}
	}
	return out
}

// NewConflicts builds Conflicts from a flat list, one group per entry.
func NewConflicts(ranges []PackageRange) Conflicts {
	out := make(Conflicts, len(ranges))
	for i := range ranges {
		out[i] = Exclusion{ranges[i]}
	}
	return out
}

// Violations returns every forbidden range that matches an installed
// package. Each member of each group is checked individually.
func (c Conflicts) Violations(installed []PackageVersion) []PackageRange {
	var out []PackageRange
	for _, group := range c {
		for _, r := range group {
			for _, p := range installed {
				if r.Matches(p) {
					out = append(out, r)
					break
				}
			}
		}
	}
	return out
}

// Provided returns everything this package can satisfy: itself at
// its own version, followed by its virtual packages.
func (i *PackageInfo) Provided() []PackageVersion {
	out := make([]PackageVersion, 0, len(i.Relation.ProvidedVirtuals)+1)
	out = append(out, PackageVersion{Name: i.Name, Version: i.Version})
	return append(out, i.Relation.ProvidedVirtuals...)
}
