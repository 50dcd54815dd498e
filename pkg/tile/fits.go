package tile

import "strings"

// Fits decides whether edge label a on one tile may abut edge label b
// on a neighboring tile. a is the outward-facing label of the source
// tile's side, b the outward-facing label of the neighbor's opposing
// side.
//
// Labels tokenize by hyphen as <shape>-<class>[-<flag>]. Two i shapes
// with equal classes match symmetrically; a q and a p shape with equal
// classes match as a connector pair; matching u_-prefixed flags veto an
// otherwise valid pairing. A label with fewer than two tokens matches
// nothing.
func Fits(a, b string) bool {
	av := strings.Split(a, "-")
	bv := strings.Split(b, "-")

	if len(av) < 2 || len(bv) < 2 {
		return false
	}

	aShape, aClass := av[0], av[1]
	bShape, bClass := bv[0], bv[1]

	aFlag, bFlag := "none", "none"
	if len(av) > 2 {
		aFlag = av[2]
	}
	if len(bv) > 2 {
		bFlag = bv[2]
	}

	if strings.HasPrefix(aFlag, "u_") && strings.HasPrefix(bFlag, "u_") && aFlag == bFlag {
		return false
	}

	if aShape == "i" && bShape == "i" && aClass == bClass {
		return true
	}

	if (aShape == "q" && bShape == "p") || (aShape == "p" && bShape == "q") {
		return aClass == bClass
	}

	return false
}
