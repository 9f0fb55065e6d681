package system

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/cord"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/input"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/status"
)

// Base colors before day/night tinting
var (
	playerColor = colorful.Color{R: 0.95, G: 0.85, B: 0.3}
	poleColor   = colorful.Color{R: 0.6, G: 0.6, B: 0.7}
)

// Options carries collaborators owned by the caller; all fields are optional
type Options struct {
	Input     *input.State
	Commands  <-chan string
	Audio     engine.AudioPlayer
	Publisher Publisher
	Status    *status.Registry
}

// NewGame registers resources, spawns the scene and adds every simulation system
func NewGame(world *engine.World, cfg config.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	mode, _ := cfg.CordMode()
	curve, _ := cfg.CordCurve()
	log := logger.System("setup")

	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	space := physics.NewSpace(parameter.PhysicsIterations)

	rs := world.Resources
	engine.AddResource(rs, &cfg)
	engine.AddResource(rs, reg)
	engine.AddResource(rs, &engine.TimeResource{})
	engine.AddResource(rs, &engine.InputResource{})
	engine.AddResource(rs, engine.NewTogglesResource())
	engine.AddResource(rs, &engine.MessageResource{})
	engine.AddResource(rs, &engine.PhysicsResource{Space: space})
	engine.AddResource(rs, &engine.AudioResource{Player: opts.Audio})
	engine.AddResource(rs, &engine.CameraResource{Center: cfg.Player.Start, Zoom: parameter.CameraDefaultZoom})

	dayNight := &engine.DayNightResource{
		TimeOfDay: cfg.DayNight.Start,
		Duration:  cfg.DayNight.Duration,
		Speed:     cfg.DayNight.Speed,
	}
	Refresh(dayNight)
	engine.AddResource(rs, dayNight)

	// Player
	player := world.CreateEntity()
	body := space.SpawnCharacter(cfg.Player.Start, cfg.Player.Radius, cfg.Player.Damping, cfg.Player.DriveForce)
	world.Players.SetComponent(player, component.PlayerComponent{Body: body, Facing: component.FacingDown})
	world.Transforms.SetComponent(player, component.TransformComponent{Pos: cfg.Player.Start})
	world.Batteries.SetComponent(player, component.BatteryComponent{Charge: cfg.Player.Battery, Max: cfg.Player.Battery})
	world.SolarPanels.SetComponent(player, component.SolarPanelComponent{MaxOutput: cfg.Player.SolarOutput})
	world.Tints.SetComponent(player, component.TintComponent{Base: playerColor, Current: playerColor})
	engine.AddResource(rs, &engine.PlayerResource{Entity: player})

	// Poles
	registry := cord.NewRegistry()
	for _, pc := range cfg.Poles {
		pole := world.CreateEntity()
		pos := pc.Position()
		world.Transforms.SetComponent(pole, component.TransformComponent{Pos: pos})
		world.Poles.SetComponent(pole, component.PoleComponent{Label: pc.Label})
		world.PowerSources.SetComponent(pole, component.PowerSourceComponent{MaxOutput: pc.MaxOutput})
		world.Tints.SetComponent(pole, component.TintComponent{Base: poleColor, Current: poleColor})
		registry.Add(pole, pos)
	}

	// Cord
	state, err := cord.NewState(cfg.Cord, mode)
	if err != nil {
		return errors.Wrap(err, "cord state")
	}
	attacher := &cord.Attacher{Registry: registry}
	var chain *cord.Chain
	if mode == cord.ModeChain {
		chain = cord.NewChain(space, body)
		attacher.Chain = chain
		attacher.Spawn = attachmentSpawner(world, space)

		if nearest, ok := registry.Nearest(cfg.Player.Start, math.Inf(1)); ok {
			if !chain.Build(state, nearest.Pos) {
				log.WithField("pole", nearest.ID).Warn("initial chain build failed")
			}
		}
	}
	outcome := attacher.Toggle(state, cfg.Player.Start)
	log.WithFields(logrus.Fields{
		"mode":     mode.String(),
		"curve":    curve.String(),
		"poles":    len(cfg.Poles),
		"segments": len(state.Segments),
		"outcome":  outcome.String(),
	}).Info("world ready")

	engine.AddResource(rs, &engine.CordResource{
		State:    state,
		Registry: registry,
		Chain:    chain,
		Attacher: attacher,
		Grid:     cfg.IsoGrid(),
		Curve:    curve,
	})

	// Systems resolve resources in their constructors; register after all resources
	world.AddSystem(NewInputSystem(world, opts.Input, opts.Commands))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewCordSystem(world))
	world.AddSystem(NewAttachSystem(world))
	world.AddSystem(NewPowerSystem(world))
	world.AddSystem(NewDayNightSystem(world))
	world.AddSystem(NewCameraSystem(world))
	world.AddSystem(NewAudioSystem(world))
	world.AddSystem(NewTelemetrySystem(world, opts.Publisher))
	return nil
}

// attachmentSpawner creates a static attachment body and entity at the anchor
func attachmentSpawner(world *engine.World, space *physics.Space) cord.PointSpawner {
	return func(a cord.Anchor) (core.Entity, physics.BodyHandle) {
		h := space.SpawnStaticBody(a.Pos, parameter.PoleRadius)
		if h == 0 {
			return core.None, 0
		}
		e := world.CreateEntity()
		world.AttachmentPoints.SetComponent(e, component.AttachmentPointComponent{Parent: a.ID})
		world.Transforms.SetComponent(e, component.TransformComponent{Pos: a.Pos})
		return e, h
	}
}
