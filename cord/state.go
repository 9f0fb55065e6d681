package cord

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/physics"
	"github.com/lixenwraith/balthazar/vmath"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid cord config")

// MinSegments is the chain floor
const MinSegments = 2

// Mode selects the cord representation
type Mode uint8

const (
	// ModeChain simulates the cord as physics bodies linked by joints
	ModeChain Mode = iota
	// ModeTrail records snapped tile centers as the player walks
	ModeTrail
)

func (m Mode) String() string {
	switch m {
	case ModeChain:
		return "chain"
	case ModeTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chain":
		return ModeChain, nil
	case "trail":
		return ModeTrail, nil
	}
	return ModeChain, errors.Errorf("unknown cord mode %q", s)
}

// Tolerance is a joint distance band as fractions of the segment length
type Tolerance struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Limits scales the band by a segment length
func (t Tolerance) Limits(length float64) (float64, float64) {
	return length * t.Min, length * t.Max
}

// Config holds static cord parameters
type Config struct {
	MinLength       float64 `yaml:"min_length"`
	MaxLength       float64 `yaml:"max_length"`
	SegmentLength   float64 `yaml:"segment_length"`
	SegmentSize     float64 `yaml:"segment_size"`
	RetractionSpeed float64 `yaml:"retraction_speed"`
	ExtensionSpeed  float64 `yaml:"extension_speed"`
	PullThreshold   float64 `yaml:"pull_threshold"`
	AttachmentRange float64 `yaml:"attachment_range"`
	InitialSegments int     `yaml:"initial_segments"`

	BackpackOffset vmath.Vec2 `yaml:"backpack_offset"`

	// Stiffness gradient: build joints tightest, ends loosest
	BuildJoint   Tolerance `yaml:"build_joint"`
	SegmentJoint Tolerance `yaml:"segment_joint"`
	AnchorJoint  Tolerance `yaml:"anchor_joint"`

	BuildDamping   float64 `yaml:"build_damping"`
	SegmentDamping float64 `yaml:"segment_damping"`

	TrailEpsilon float64 `yaml:"trail_epsilon"`
}

// DefaultConfig returns the tuned prototype values
func DefaultConfig() Config {
	return Config{
		MinLength:       50,
		MaxLength:       500,
		SegmentLength:   10,
		SegmentSize:     4,
		RetractionSpeed: 300,
		ExtensionSpeed:  80,
		PullThreshold:   0.95,
		AttachmentRange: 100,
		InitialSegments: MinSegments,
		BackpackOffset:  vmath.Vec2{Y: -12},
		BuildJoint:      Tolerance{Min: 0.99, Max: 1.01},
		SegmentJoint:    Tolerance{Min: 0.95, Max: 1.05},
		AnchorJoint:     Tolerance{Min: 0.9, Max: 1.1},
		BuildDamping:    3.0,
		SegmentDamping:  1.2,
		TrailEpsilon:    0.1,
	}
}

// Validate checks ranges and orderings
func (c Config) Validate() error {
	switch {
	case c.MinLength < 0:
		return errors.Wrapf(ErrInvalidConfig, "min_length %v is negative", c.MinLength)
	case c.MaxLength < c.MinLength:
		return errors.Wrapf(ErrInvalidConfig, "max_length %v below min_length %v", c.MaxLength, c.MinLength)
	case c.SegmentLength <= 0:
		return errors.Wrapf(ErrInvalidConfig, "segment_length %v must be positive", c.SegmentLength)
	case c.SegmentSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "segment_size %v must be positive", c.SegmentSize)
	case c.RetractionSpeed < 0 || c.ExtensionSpeed < 0:
		return errors.Wrap(ErrInvalidConfig, "speeds must not be negative")
	case c.PullThreshold <= 0 || c.PullThreshold > 1:
		return errors.Wrapf(ErrInvalidConfig, "pull_threshold %v outside (0,1]", c.PullThreshold)
	case c.AttachmentRange < 0:
		return errors.Wrapf(ErrInvalidConfig, "attachment_range %v is negative", c.AttachmentRange)
	case c.InitialSegments < MinSegments:
		return errors.Wrapf(ErrInvalidConfig, "initial_segments %d below floor %d", c.InitialSegments, MinSegments)
	case c.TrailEpsilon < 0:
		return errors.Wrapf(ErrInvalidConfig, "trail_epsilon %v is negative", c.TrailEpsilon)
	}
	for name, t := range map[string]Tolerance{"build_joint": c.BuildJoint, "segment_joint": c.SegmentJoint, "anchor_joint": c.AnchorJoint} {
		if t.Min <= 0 || t.Max < t.Min {
			return errors.Wrapf(ErrInvalidConfig, "%s band [%v,%v] malformed", name, t.Min, t.Max)
		}
	}
	return nil
}

// State is the single mutable cord record, advanced once per tick
type State struct {
	Config Config
	Mode   Mode

	CurrentLength float64
	// IsRetracting mirrors the last tick's retract input; display only
	IsRetracting bool
	// Attached is the attachment point id, core.None when free
	Attached core.Entity

	// Segments are ordered anchor side first; Joints are anchor joint (when attached), inter-segment joints, then player joint
	Segments []physics.BodyHandle
	Joints   []physics.JointHandle

	Trail []vmath.Vec2
}

// NewState validates cfg and returns a detached state at the initial length
func NewState(cfg Config, mode Mode) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial := float64(cfg.InitialSegments) * cfg.SegmentLength
	return &State{
		Config:        cfg,
		Mode:          mode,
		CurrentLength: vmath.Clamp(initial, cfg.MinLength, cfg.MaxLength),
	}, nil
}

// IsAttached reports whether the cord is bound to an attachment point
func (s *State) IsAttached() bool {
	return s.Attached.Valid()
}

// TargetSegments is the segment count implied by the current length
func (s *State) TargetSegments() int {
	return int(math.Floor(s.CurrentLength / s.Config.SegmentLength))
}

// ExpectedJoints is the joint count for the current segment count and attachment
func (s *State) ExpectedJoints() int {
	n := len(s.Segments)
	if n == 0 {
		return 0
	}
	if s.IsAttached() {
		return n + 1
	}
	return n
}
