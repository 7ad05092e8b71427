// Command qtcurves prints generated punch and shake keyframe sequences
// as YAML, to inspect or tune effects outside of a game:
//
//	qtcurves punch -direction 0,12,0 -duration 0.4 -vibrato 6
//	qtcurves shake -strength 4 -duration 1 -seed 7 -fade
//	qtcurves punch -presets presets.yaml -name hit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/preset"
)

const usage = "usage: qtcurves punch|shake [flags]"

type keyframeOut struct {
	Target   vectorOut `yaml:"target"`
	Duration float64   `yaml:"duration"`
}

type vectorOut struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type sequenceOut struct {
	Kind      string        `yaml:"kind"`
	Start     vectorOut     `yaml:"start"`
	Duration  float64       `yaml:"duration"`
	Keyframes []keyframeOut `yaml:"keyframes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "qtcurves:", err)
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: %w", usage, flag.ErrHelp)
	}

	var (
		kind     = args[0]
		sequence quicktween.Sequence
		start    vectorFlag
		err      error
	)
	switch kind {
	case "punch":
		sequence, start, err = punch(args[1:])
	case "shake":
		sequence, start, err = shake(args[1:])
	default:
		return fmt.Errorf("unknown sequence kind %q (%s): %w", kind, usage, flag.ErrHelp)
	}
	if err != nil {
		return err
	}

	doc := sequenceOut{
		Kind:      kind,
		Start:     toOut(quicktween.Vector3(start)),
		Duration:  sequence.TotalDuration(),
		Keyframes: make([]keyframeOut, len(sequence)),
	}
	for i, keyframe := range sequence {
		doc.Keyframes[i] = keyframeOut{Target: toOut(keyframe.Target), Duration: keyframe.Duration}
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return encoder.Close()
}

func punch(args []string) (quicktween.Sequence, vectorFlag, error) {
	flags := flag.NewFlagSet("punch", flag.ContinueOnError)
	start := vectorFlag{}
	direction := vectorFlag{Y: 1}
	flags.Var(&start, "start", "start value as x,y,z")
	flags.Var(&direction, "direction", "punch direction and strength as x,y,z")
	duration := flags.Float64("duration", 0.5, "duration in seconds")
	vibrato := flags.Float64("vibrato", 10, "oscillations per second")
	elasticity := flags.Float64("elasticity", 1, "backward swing, between 0 and 1")
	presets := flags.String("presets", "", "preset file to read the punch from")
	name := flags.String("name", "", "punch preset name, with -presets")
	if err := flags.Parse(args); err != nil {
		return nil, start, err
	}

	if *presets != "" {
		library, err := preset.Load(*presets)
		if err != nil {
			return nil, start, err
		}
		spec, err := library.Punch(*name)
		if err != nil {
			return nil, start, err
		}
		return spec.Sequence(quicktween.Vector3(start)), start, nil
	}
	sequence := quicktween.GeneratePunchSequence(quicktween.Vector3(start), quicktween.Vector3(direction), *duration, *vibrato, *elasticity)
	return sequence, start, nil
}

func shake(args []string) (quicktween.Sequence, vectorFlag, error) {
	flags := flag.NewFlagSet("shake", flag.ContinueOnError)
	start := vectorFlag{}
	strength := vectorFlag{X: 1, Y: 1, Z: 1}
	flags.Var(&start, "start", "start value as x,y,z")
	flags.Var(&strength, "strength", "shake strength, as x,y,z or a single uniform value")
	duration := flags.Float64("duration", 0.5, "duration in seconds")
	vibrato := flags.Float64("vibrato", 10, "oscillations per second")
	randomness := flags.Float64("randomness", 90, "random angular jitter in degrees")
	ignoreZ := flags.Bool("ignore-z", false, "keep the shake on the XY plane")
	vectorBased := flags.Bool("vector", false, "use the strength per axis instead of its length")
	fadeOut := flags.Bool("fade", true, "decay the shake over time")
	mode := flags.String("mode", "full", "randomness mode: full or harmonic")
	seed := flags.Uint64("seed", 0, "random seed, 0 for a random one")
	presets := flags.String("presets", "", "preset file to read the shake from")
	name := flags.String("name", "", "shake preset name, with -presets")
	if err := flags.Parse(args); err != nil {
		return nil, start, err
	}

	var rng quicktween.RandomSource
	if *seed != 0 {
		rng = quicktween.NewRandomSource(*seed)
	}

	if *presets != "" {
		library, err := preset.Load(*presets)
		if err != nil {
			return nil, start, err
		}
		spec, err := library.Shake(*name)
		if err != nil {
			return nil, start, err
		}
		return spec.Sequence(rng, quicktween.Vector3(start)), start, nil
	}

	randomnessMode, found := quicktween.ParseRandomnessMode(*mode)
	if !found {
		return nil, start, fmt.Errorf("%w %q", preset.ErrUnknownMode, *mode)
	}
	opts := quicktween.ShakeOptions{
		Strength:    quicktween.Vector3(strength),
		Vibrato:     *vibrato,
		Randomness:  *randomness,
		IgnoreZAxis: *ignoreZ,
		VectorBased: *vectorBased,
		FadeOut:     *fadeOut,
		Mode:        randomnessMode,
	}
	return quicktween.GenerateShakeSequence(rng, quicktween.Vector3(start), *duration, opts), start, nil
}

// A vector flag accepting "x,y,z", or a single value for all axes.
type vectorFlag quicktween.Vector3

func (self *vectorFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", self.X, self.Y, self.Z)
}

func (self *vectorFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return fmt.Errorf("expected x,y,z or a single value, got %q", value)
	}
	components := make([]float64, len(parts))
	for i, part := range parts {
		component, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		components[i] = component
	}
	if len(components) == 1 {
		*self = vectorFlag(quicktween.UniformStrength(components[0]))
	} else {
		*self = vectorFlag{components[0], components[1], components[2]}
	}
	return nil
}

func toOut(v quicktween.Vector3) vectorOut {
	return vectorOut{X: v.X, Y: v.Y, Z: v.Z}
}
