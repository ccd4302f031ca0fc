package tessella

// Group identifies one of the 17 wallpaper groups, the complete
// classification of periodic plane symmetries by rotation order,
// reflection axes, and glide reflections.
type Group string

const (
	// P1 has translations only.
	P1 Group = "p1"
	// P2 adds 2-fold rotation centres.
	P2 Group = "p2"
	// PM has reflections along one axis.
	PM Group = "pm"
	// PG has glide reflections only.
	PG Group = "pg"
	// CM has a reflection plus a parallel glide reflection.
	CM Group = "cm"
	// PMM has reflections along two perpendicular axes.
	PMM Group = "pmm"
	// PMG has a reflection plus perpendicular glide reflections.
	PMG Group = "pmg"
	// PGG has two perpendicular glide reflections.
	PGG Group = "pgg"
	// CMM has perpendicular reflections with 2-fold centres off-axis.
	CMM Group = "cmm"
	// P4 has 4-fold rotation centres.
	P4 Group = "p4"
	// P4M adds reflections through the 4-fold centres.
	P4M Group = "p4m"
	// P4G adds reflections between the 4-fold centres.
	P4G Group = "p4g"
	// P3 has 3-fold rotation centres.
	P3 Group = "p3"
	// P3M1 adds reflections through every 3-fold centre.
	P3M1 Group = "p3m1"
	// P31M adds reflections through alternate 3-fold centres.
	P31M Group = "p31m"
	// P6 has 6-fold rotation centres.
	P6 Group = "p6"
	// P6M adds reflections to the 6-fold rotations.
	P6M Group = "p6m"
)

// groups lists every group, rectangular lattices first, then the
// rotational and hexagonal families.
var groups = []Group{
	P1, PM, PMM, PG, CM, PMG, CMM, PGG,
	P2, P3, P3M1, P31M, P4, P4M, P4G, P6, P6M,
}

// Groups returns all 17 wallpaper groups in a stable order.
// The returned slice is a copy and may be modified by the caller.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// ParseGroup validates a group name. Unrecognized names return an
// UnknownGroupError so callers can keep their last-known-good group.
func ParseGroup(name string) (Group, error) {
	g := Group(name)
	for _, known := range groups {
		if g == known {
			return g, nil
		}
	}
	return "", &UnknownGroupError{Name: name}
}

// String returns the group's conventional crystallographic name.
func (g Group) String() string { return string(g) }
