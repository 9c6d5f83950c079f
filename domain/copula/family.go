package copula

import (
	"fmt"
	"sort"
	"strings"
)

// Family identifies a bivariate copula family by its numeric code.
//
// Codes follow the conventional catalog: 0 is the independence copula,
// 1-10 are the base families, and the 90/180/270 degree rotations of the
// asymmetric families live at base+20, base+10 and base+30 respectively.
type Family int

// Base family codes
const (
	Independence Family = 0
	Gaussian     Family = 1
	StudentT     Family = 2
	Clayton      Family = 3
	Gumbel       Family = 4
	Frank        Family = 5
	Joe          Family = 6
	BB1          Family = 7
	BB6          Family = 8
	BB7          Family = 9
	BB8          Family = 10
)

// familyNames maps every supported code to its display name
var familyNames = map[Family]string{
	Independence: "Independence",
	Gaussian:     "Gaussian",
	StudentT:     "t",
	Clayton:      "Clayton",
	Gumbel:       "Gumbel",
	Frank:        "Frank",
	Joe:          "Joe",
	BB1:          "BB1",
	BB6:          "BB6",
	BB7:          "BB7",
	BB8:          "BB8",
}

// rotatable lists the base families that have distinct rotated variants.
// The elliptical families (Gaussian, t) and Frank are exchangeable under
// rotation, so no rotated codes exist for them.
var rotatable = []Family{Clayton, Gumbel, Joe, BB1, BB6, BB7, BB8}

// twoParameter is the single authoritative membership set for families
// with two parameters; everything else carries one. This partition drives
// the Akaike/Schwarz corrections, so it lives in exactly one place.
var twoParameter = map[Family]bool{
	StudentT: true,
	BB1:      true,
	BB6:      true,
	BB7:      true,
	BB8:      true,
}

func init() {
	for _, base := range rotatable {
		for _, rot := range []Family{10, 20, 30} {
			familyNames[base+rot] = fmt.Sprintf("%s %d°", familyNames[base], rotationDegrees(rot))
			if twoParameter[base] {
				twoParameter[base+rot] = true
			}
		}
	}
}

func rotationDegrees(offset Family) int {
	switch offset {
	case 10:
		return 180
	case 20:
		return 90
	default:
		return 270
	}
}

// IsValid reports whether f is a known catalog code
func (f Family) IsValid() bool {
	_, ok := familyNames[f]
	return ok
}

// Name returns the display name for the family, or its numeric code if unknown
func (f Family) Name() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// String implements fmt.Stringer
func (f Family) String() string {
	return f.Name()
}

// ParamCount returns the number of parameters the family carries (1 or 2)
func (f Family) ParamCount() int {
	if twoParameter[f] {
		return 2
	}
	return 1
}

// Rotations returns the rotated variants of f, in 180/90/270 order.
// Families without distinct rotations return an empty slice.
func (f Family) Rotations() []Family {
	for _, base := range rotatable {
		if f == base {
			return []Family{base + 10, base + 20, base + 30}
		}
	}
	return nil
}

// All returns every supported family code in ascending order
func All() []Family {
	out := make([]Family, 0, len(familyNames))
	for f := range familyNames {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExpandRotations returns set with the rotated variants of each member
// appended as a block after it, preserving input order and dropping
// duplicates. Used when the caller asks for rotations to be included
// automatically.
func ExpandRotations(set []Family) []Family {
	seen := make(map[Family]bool, len(set)*4)
	out := make([]Family, 0, len(set)*4)
	for _, f := range set {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
		for _, r := range f.Rotations() {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// Parse converts a comma-separated list of numeric codes into a family set
func Parse(list string) ([]Family, error) {
	parts := strings.Split(list, ",")
	out := make([]Family, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var code int
		if _, err := fmt.Sscanf(part, "%d", &code); err != nil {
			return nil, fmt.Errorf("invalid family code %q", part)
		}
		f := Family(code)
		if !f.IsValid() {
			return nil, fmt.Errorf("unknown family code %d", code)
		}
		out = append(out, f)
	}
	return out, nil
}
