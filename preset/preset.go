// Package preset loads named punch, shake and jump effects from YAML
// files, so effects can be tuned without recompiling:
//
//	punches:
//	  hit:
//	    direction: {x: 0, y: 12}
//	    duration: 0.4
//	    vibrato: 6
//	    elasticity: 0.5
//	    easing: quadOut
//	shakes:
//	  quake:
//	    strength: {x: 6, y: 6}
//	    duration: 0.8
//	    vibrato: 20
//	    randomness: 90
//	    ignore_z_axis: true
//	    fade_out: true
//	jumps:
//	  hop:
//	    offset: {x: 40}
//	    height: 24
//	    count: 2
//	    duration: 0.9
//
// See [Watch]() for hot reloading.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/node"
	"github.com/edwinsyarief/quicktween/tween"
)

var (
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidVibrato    = errors.New("vibrato can't be negative")
	ErrInvalidElasticity = errors.New("elasticity must be between 0 and 1")
	ErrInvalidJump       = errors.New("jump height can't be negative and count must be at least 1")
	ErrUnknownEasing     = errors.New("unknown easing")
	ErrUnknownMode       = errors.New("unknown randomness mode")
	ErrPresetNotFound    = errors.New("preset not found")
)

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (self Vec3Spec) Vector() quicktween.Vector3 {
	return quicktween.V3(self.X, self.Y, self.Z)
}

type PunchSpec struct {
	Direction  Vec3Spec `yaml:"direction"`
	Duration   float64  `yaml:"duration"`
	Vibrato    float64  `yaml:"vibrato"`
	Elasticity float64  `yaml:"elasticity"`
	Easing     string   `yaml:"easing"`
}

type ShakeSpec struct {
	Strength    Vec3Spec `yaml:"strength"`
	Duration    float64  `yaml:"duration"`
	Vibrato     float64  `yaml:"vibrato"`
	Randomness  float64  `yaml:"randomness"`
	IgnoreZAxis bool     `yaml:"ignore_z_axis"`
	VectorBased bool     `yaml:"vector_based"`
	FadeOut     bool     `yaml:"fade_out"`
	Mode        string   `yaml:"mode"`
	Easing      string   `yaml:"easing"`
}

type JumpSpec struct {
	Offset   Vec3Spec `yaml:"offset"` // relative to the position when the jump is built
	Height   float64  `yaml:"height"`
	Count    int      `yaml:"count"`
	Duration float64  `yaml:"duration"`
}

// A set of named effects, as found in a preset file.
type Library struct {
	Punches map[string]PunchSpec `yaml:"punches"`
	Shakes  map[string]ShakeSpec `yaml:"shakes"`
	Jumps   map[string]JumpSpec  `yaml:"jumps"`
}

// Reads, parses and validates the preset file at the given path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	library, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return library, nil
}

// Parses and validates preset YAML. Unknown fields are rejected so
// that typos don't silently fall back to zero values. Empty input
// results in an empty library.
func Parse(data []byte) (*Library, error) {
	var library Library
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&library); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := library.Validate(); err != nil {
		return nil, err
	}
	return &library, nil
}

// Returns all problems found in the library, joined. Each problem
// wraps one of the package's sentinel errors.
func (self *Library) Validate() error {
	var errs []error
	for _, name := range sortedKeys(self.Punches) {
		errs = append(errs, prefixed("punch", name, self.Punches[name].validate())...)
	}
	for _, name := range sortedKeys(self.Shakes) {
		errs = append(errs, prefixed("shake", name, self.Shakes[name].validate())...)
	}
	for _, name := range sortedKeys(self.Jumps) {
		errs = append(errs, prefixed("jump", name, self.Jumps[name].validate())...)
	}
	return errors.Join(errs...)
}

func (self *Library) Punch(name string) (PunchSpec, error) {
	spec, found := self.Punches[name]
	if !found {
		return spec, fmt.Errorf("punch %q: %w", name, ErrPresetNotFound)
	}
	return spec, nil
}

func (self *Library) Shake(name string) (ShakeSpec, error) {
	spec, found := self.Shakes[name]
	if !found {
		return spec, fmt.Errorf("shake %q: %w", name, ErrPresetNotFound)
	}
	return spec, nil
}

func (self *Library) Jump(name string) (JumpSpec, error) {
	spec, found := self.Jumps[name]
	if !found {
		return spec, fmt.Errorf("jump %q: %w", name, ErrPresetNotFound)
	}
	return spec, nil
}

// --- building effects ---

// Builds a punch on the node's position.
func (self PunchSpec) Apply(target *node.Node) *tween.Tween {
	return target.PunchPosition(self.Direction.Vector(), self.Duration, self.Vibrato, self.Elasticity, easingOption(self.Easing))
}

func (self PunchSpec) Sequence(start quicktween.Vector3) quicktween.Sequence {
	return quicktween.GeneratePunchSequence(start, self.Direction.Vector(), self.Duration, self.Vibrato, self.Elasticity)
}

func (self ShakeSpec) Options() quicktween.ShakeOptions {
	mode, _ := quicktween.ParseRandomnessMode(self.Mode)
	return quicktween.ShakeOptions{
		Strength:    self.Strength.Vector(),
		Vibrato:     self.Vibrato,
		Randomness:  self.Randomness,
		IgnoreZAxis: self.IgnoreZAxis,
		VectorBased: self.VectorBased,
		FadeOut:     self.FadeOut,
		Mode:        mode,
	}
}

// Builds a shake on the node's position.
func (self ShakeSpec) Apply(target *node.Node) *tween.Tween {
	return target.ShakePosition(self.Duration, self.Options(), easingOption(self.Easing))
}

func (self ShakeSpec) Sequence(rng quicktween.RandomSource, start quicktween.Vector3) quicktween.Sequence {
	return quicktween.GenerateShakeSequence(rng, start, self.Duration, self.Options())
}

// Builds a jump from the node's current position.
func (self JumpSpec) Apply(target *node.Node) *tween.Tween {
	to := target.Position().Add(self.Offset.Vector())
	return target.JumpPosition(to, self.Height, self.Count, self.Duration)
}

// --- validation ---

func (self PunchSpec) validate() []error {
	var errs []error
	if !(self.Duration > 0) {
		errs = append(errs, ErrInvalidDuration)
	}
	if self.Vibrato < 0 {
		errs = append(errs, ErrInvalidVibrato)
	}
	if self.Elasticity < 0 || self.Elasticity > 1 {
		errs = append(errs, ErrInvalidElasticity)
	}
	return append(errs, validateEasing(self.Easing)...)
}

func (self ShakeSpec) validate() []error {
	var errs []error
	if !(self.Duration > 0) {
		errs = append(errs, ErrInvalidDuration)
	}
	if self.Vibrato < 0 {
		errs = append(errs, ErrInvalidVibrato)
	}
	if _, found := quicktween.ParseRandomnessMode(self.Mode); !found {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownMode, self.Mode))
	}
	return append(errs, validateEasing(self.Easing)...)
}

func (self JumpSpec) validate() []error {
	var errs []error
	if !(self.Duration > 0) {
		errs = append(errs, ErrInvalidDuration)
	}
	if self.Height < 0 || self.Count < 1 {
		errs = append(errs, ErrInvalidJump)
	}
	return errs
}

func validateEasing(name string) []error {
	if _, found := tween.EasingByName(name); !found {
		return []error{fmt.Errorf("%w %q", ErrUnknownEasing, name)}
	}
	return nil
}

func easingOption(name string) tween.Option {
	easing, found := tween.EasingByName(name)
	if !found {
		easing, _ = tween.EasingByName("")
	}
	return tween.WithEasing(easing)
}

func prefixed(kind, name string, errs []error) []error {
	for i, err := range errs {
		errs[i] = fmt.Errorf("%s %q: %w", kind, name, err)
	}
	return errs
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
