package game

import "math"

// SegmentHitsCircle reports whether a beam segment of the given width on the
// ground plane overlaps a circle of radius pr centered at (px, pz). The check
// is distance from the point to the closest point on the segment, against
// half the width plus the radius.
func SegmentHitsCircle(x1, z1, x2, z2, width, px, pz, pr float64) bool {
	dx := x2 - x1
	dz := z2 - z1

	lenSq := dx*dx + dz*dz
	t := 0.0
	if lenSq > 1e-12 {
		t = ((px-x1)*dx + (pz-z1)*dz) / lenSq
		t = math.Max(0, math.Min(1, t))
	}

	cx := x1 + t*dx
	cz := z1 + t*dz
	ddx := px - cx
	ddz := pz - cz

	reach := width/2 + pr
	return ddx*ddx+ddz*ddz <= reach*reach
}
