package core

import (
	"errors"
	"fmt"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeEnum denotes a named choice from a fixed list.
	ParamTypeEnum ParamType = "enum"
)

// Parameter describes a single tunable value exposed by a sim.
type Parameter struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        ParamType `json:"type"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	Choices     []string  `json:"choices,omitempty"`
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, v int, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

// FloatParam builds a floating-point Parameter.
func FloatParam(key, label string, v float64, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64), Description: desc}
}

// EnumParam builds a named-choice Parameter.
func EnumParam(key, label, v string, choices []string, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeEnum, Value: v, Description: desc, Choices: choices}
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Values flattens the snapshot into the string map accepted by a Factory,
// so a snapshot can be replayed into a fresh sim.
func (s ParameterSnapshot) Values() map[string]string {
	out := map[string]string{}
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out[p.Key] = p.Value
		}
	}
	return out
}

// ParameterProvider exposes the current parameter snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type. Enum controls cycle through the parameter's choices.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// EnumParameterSetter allows HUD interactions to pick a named choice.
type EnumParameterSetter interface {
	SetEnumParameter(key, value string) bool
}

// ErrBadParameter reports a configuration map value that does not parse.
var ErrBadParameter = errors.New("bad parameter")

// IntValue parses cfg[key] into dst when present.
func IntValue(cfg map[string]string, key string, dst *int) error {
	v, ok := cfg[key]
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadParameter, key, v)
	}
	*dst = parsed
	return nil
}

// Int64Value parses cfg[key] into dst when present.
func Int64Value(cfg map[string]string, key string, dst *int64) error {
	v, ok := cfg[key]
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadParameter, key, v)
	}
	*dst = parsed
	return nil
}

// FloatValue parses cfg[key] into dst when present.
func FloatValue(cfg map[string]string, key string, dst *float64) error {
	v, ok := cfg[key]
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadParameter, key, v)
	}
	*dst = parsed
	return nil
}
