package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/vmath"
)

// MovementSystem steers the player body from movement intent and drains the battery
type MovementSystem struct {
	engine.SystemBase
	log *logrus.Entry

	speed     float64
	drainRate float64
	wasEmpty  bool
}

// NewMovementSystem creates the player movement system
func NewMovementSystem(world *engine.World) *MovementSystem {
	s := &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
		log:        logger.System("movement"),
		speed:      parameter.PlayerSpeed,
		drainRate:  parameter.BatteryDrainRate,
	}
	if cfg := s.Resource.Config; cfg != nil {
		s.speed = cfg.Player.Speed
		s.drainRate = cfg.Player.DrainRate
	}
	return s
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	r := s.Resource
	if r.Input == nil || r.Player == nil || r.Physics == nil || r.Time == nil {
		return
	}
	player := r.Player.Entity
	pc, ok := s.World.Players.GetComponent(player)
	if !ok {
		return
	}

	move := r.Input.Move
	if r.Toggles != nil && !r.Toggles.PlayerMovement {
		move = vmath.Vec2{}
	}
	moving := move.X != 0 || move.Y != 0

	empty := false
	if moving {
		s.World.Batteries.Update(player, func(b *component.BatteryComponent) {
			b.Add(-s.drainRate * r.Time.DT())
			empty = b.Empty()
		})
	} else if b, ok := s.World.Batteries.GetComponent(player); ok {
		empty = b.Empty()
	}

	if empty && !s.wasEmpty {
		s.log.Info("battery empty")
		if r.Audio != nil {
			r.Audio.Queue(core.SoundBatteryEmpty)
		}
		if r.Message != nil {
			r.Message.Show("Battery empty", r.Time.GameTime, parameter.MessageDuration)
		}
	}
	s.wasEmpty = empty

	velocity := vmath.V2Scale(move, s.speed)
	if empty {
		velocity = vmath.Vec2{}
	}
	// Steering goes through the drive so cord joints still correct the body
	if err := r.Physics.Space.Drive(pc.Body, velocity); err != nil {
		s.log.WithError(err).Debug("drive player")
	}

	rotate := r.Toggles == nil || r.Toggles.PlayerRotation
	s.World.Players.Update(player, func(p *component.PlayerComponent) {
		p.Moving = moving && !empty
		if rotate {
			if facing, ok := Facing(move); ok {
				p.Facing = facing
			}
		}
	})
}

// Facing picks the sprite direction from the dominant movement axis
// Returns false when the input is below the facing threshold
func Facing(move vmath.Vec2) (component.Direction, bool) {
	if vmath.V2Mag(move) <= parameter.PlayerFacingThreshold {
		return 0, false
	}
	if math.Abs(move.X) > math.Abs(move.Y) {
		if move.X > 0 {
			return component.FacingRight, true
		}
		return component.FacingLeft, true
	}
	if move.Y > 0 {
		return component.FacingUp, true
	}
	return component.FacingDown, true
}
