package cord

import "github.com/lixenwraith/balthazar/vmath"

// TrailChange reports the trail mutation performed by one UpdateTrail call
type TrailChange uint8

const (
	TrailNone TrailChange = iota
	TrailInitialized
	TrailAppended
	TrailPopped
)

// UpdateTrail advances the tile trail from the anchor to the player
// Stepping back onto the previous tile undoes the last waypoint
func UpdateTrail(s *State, grid vmath.IsoGrid, player, anchor vmath.Vec2) TrailChange {
	if !s.IsAttached() {
		return TrailNone
	}
	if len(s.Trail) == 0 {
		s.Trail = append(s.Trail, grid.Snap(anchor))
		return TrailInitialized
	}

	tile := grid.Snap(player)
	eps := s.Config.TrailEpsilon
	n := len(s.Trail)

	if n >= 2 && vmath.V2Near(tile, s.Trail[n-2], eps) {
		s.Trail = s.Trail[:n-1]
		return TrailPopped
	}
	if !vmath.V2Near(tile, s.Trail[n-1], eps) {
		s.Trail = append(s.Trail, tile)
		return TrailAppended
	}
	return TrailNone
}
