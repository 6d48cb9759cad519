// This package implements the procedural screen shakes layered on top
// of the framecam camera, and the [Aggregator] that combines any number
// of them into a single bounded offset and rotation.
//
// A few properties hold for every shake kind:
//   - Shakes are timed in ticks, not seconds. Each call to
//     [Aggregator.Sample]() is one tick, and the internal time axis
//     advances by a fixed [TimeStep] per call. Tuned values depend on
//     the tick rate staying fixed.
//   - Strength decays linearly from 1 at birth to 0 at expiry. There's
//     no easing curve on translation; rotational kicks cube the strength
//     to fall off faster.
//   - Shakes can't be cancelled. Once triggered, an effect runs until
//     its length is consumed. Use [Aggregator.Reset]() on scene changes.
//
// Triggers are expected to come from game logic running on the same
// goroutine as the camera tick. See framecam.TriggerQueue if you need
// to fire shakes from elsewhere.
package shaker

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// The kind of disturbance an [Effect] applies.
type Kind uint8

const (
	// Translation driven by coherent noise. The organic default for hits
	// and explosions.
	Noise Kind = iota

	// Translation along a fixed direction driven by a sine wave. Good
	// for rumbles and engine vibration.
	Sinusoidal

	// A rotational kick. Doesn't translate the camera at all.
	Rotational
)

func (self Kind) String() string {
	switch self {
	case Noise:
		return "noise"
	case Sinusoidal:
		return "sinusoidal"
	case Rotational:
		return "rotational"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(self))
	}
}

// Parses a kind name as written in preset files.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "noise":
		return Noise, nil
	case "sinusoidal", "sine":
		return Sinusoidal, nil
	case "rotational", "rotation":
		return Rotational, nil
	default:
		return 0, fmt.Errorf("shaker: unknown kind %q", name)
	}
}

func (self Kind) MarshalYAML() (any, error) {
	return self.String(), nil
}

func (self *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseKind(name)
	if err != nil {
		return err
	}
	*self = kind
	return nil
}
