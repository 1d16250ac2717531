package layout

import "math"

// zoneDirections lays out zoneCount angular zone centers around the
// perimeter. zoneCount must be even; the zones split into an upper half
// (positive angles) and a lower half (negative angles), mirroring that the
// node label occupies the horizontal dead zone at angles 0 and π.
//
// Each half spans π minus the dead zone (halfDead on both ends) minus one
// gap more than it has zones. A span that would come out negative is clamped
// to zero; zones then overlap visually instead of failing.
func zoneDirections(zoneCount int, halfDead, gap float64) []float64 {
	half := zoneCount / 2
	span := zoneSpan(half, halfDead, gap)

	dirs := make([]float64, zoneCount)
	current := halfDead + gap + span/2
	for i := 0; i < half; i++ {
		dirs[i] = current
		current += gap + span
	}
	current = -math.Pi + halfDead + gap + span/2
	for i := half; i < zoneCount; i++ {
		dirs[i] = current
		current += gap + span
	}
	return dirs
}

// zoneSpan returns the angular span of a single zone when a half-perimeter
// holds count zones, clamped at zero for degenerate dead-zone/gap setups.
func zoneSpan(count int, halfDead, gap float64) float64 {
	span := (math.Pi - 2*halfDead - float64(count+1)*gap) / float64(count)
	if span < 0 {
		return 0
	}
	return span
}

// collapseZone removes the influence of one unused zone: the other zones in
// the same half are re-laid with the wider span of a half holding one zone
// less, so the freed arc is redistributed instead of leaving a dead sliver
// in the ring. The collapsed index keeps its stale direction; nothing is
// placed there.
func collapseZone(dirs []float64, empty int, halfDead, gap float64) {
	half := len(dirs) / 2
	offset := 0.0
	start, end := 0, half
	if empty >= half {
		offset = -math.Pi
		start, end = half, len(dirs)
	}
	if half < 2 {
		// A one-zone half has nothing left to re-span once its zone is empty.
		return
	}

	span := zoneSpan(half-1, halfDead, gap)
	current := offset + halfDead + gap + span/2
	for i := start; i < end; i++ {
		if i == empty {
			continue
		}
		dirs[i] = current
		current += gap + span
	}
}
