package domain

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Option is a single segment of the wheel
type Option struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

// EffectiveWeight returns the weight used for selection. Missing,
// non-positive and non-finite weights count as the default weight.
func (o Option) EffectiveWeight() float64 {
	if o.Weight <= 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
		return DefaultOptionWeight
	}
	return o.Weight
}

// OptionAction names a mutation of the option list, used for analytics
type OptionAction string

const (
	OptionActionAdd     OptionAction = "add"
	OptionActionRemove  OptionAction = "remove"
	OptionActionEdit    OptionAction = "edit"
	OptionActionWeight  OptionAction = "weight"
	OptionActionReplace OptionAction = "replace"
	OptionActionSample  OptionAction = "sample"
	OptionActionClear   OptionAction = "clear"
)

// SampleSet is a named, ready-made option list
type SampleSet struct {
	Name    string   `yaml:"name" json:"name"`
	Title   string   `yaml:"title" json:"title"`
	Options []string `yaml:"options" json:"options"`
}

// CloneOptions returns a copy of the slice so callers cannot mutate store state
func CloneOptions(opts []Option) []Option {
	if opts == nil {
		return []Option{}
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// OptionTexts returns the trimmed text of each option
func OptionTexts(opts []Option) []string {
	texts := make([]string, len(opts))
	for i, o := range opts {
		texts[i] = strings.TrimSpace(o.Text)
	}
	return texts
}

// OptionKey is the comparison key used for duplicate detection: trimmed and
// case folded, so " Pizza " and "pizza" collide.
func OptionKey(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}
