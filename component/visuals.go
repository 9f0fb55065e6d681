package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/balthazar/core"
)

// AttachmentPointComponent marks an entity created as the cord end on a pole
type AttachmentPointComponent struct {
	Parent core.Entity
}

// TintComponent holds a base color modulated by the day/night ambient light
type TintComponent struct {
	Base    colorful.Color
	Current colorful.Color
}
