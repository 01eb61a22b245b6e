package columns

import (
	"fmt"
	"math"
	"math/rand"
)

// Rule produces one value for one column. Prerequisites enumerate the sibling
// columns a dependent rule reads, without invoking the rule.
type Rule interface {
	Prerequisites() []string
	Generate(rng *rand.Rand, inputs map[string]any) (any, error)
}

// Independent is a rule with no inputs.
type Independent func(rng *rand.Rand) any

func (f Independent) Prerequisites() []string { return nil }

func (f Independent) Generate(rng *rand.Rand, _ map[string]any) (any, error) {
	return f(rng), nil
}

// Dependent is a rule whose inputs are already-generated sibling values. The
// generator passes exactly the declared prerequisites in the inputs map.
type Dependent struct {
	Inputs []string
	Fn     func(rng *rand.Rand, inputs map[string]any) (any, error)
}

func (d Dependent) Prerequisites() []string { return d.Inputs }

func (d Dependent) Generate(rng *rand.Rand, inputs map[string]any) (any, error) {
	return d.Fn(rng, inputs)
}

func intInput(inputs map[string]any, name string) (int, error) {
	v, ok := inputs[name]
	if !ok {
		return 0, fmt.Errorf("missing input %q", name)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("input %q: expected int, got %T", name, v)
	}
	return n, nil
}

func floatInput(inputs map[string]any, name string) (float64, error) {
	v, ok := inputs[name]
	if !ok {
		return 0, fmt.Errorf("missing input %q", name)
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("input %q: expected number, got %T", name, v)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// uniformInt draws uniformly from [lo, hi] inclusive.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func uniformFloat2(rng *rand.Rand, lo, hi float64) float64 {
	return round2(lo + rng.Float64()*(hi-lo))
}

func choice(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
