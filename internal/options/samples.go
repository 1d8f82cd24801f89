package options

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

//go:embed samples.yaml
var samplesYAML []byte

type samplesFile struct {
	Samples []domain.SampleSet `yaml:"samples"`
}

// ParseSamples decodes and validates a samples document
func ParseSamples(data []byte) ([]domain.SampleSet, error) {
	var f samplesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseSamples, err)
	}
	if len(f.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w", ErrContextParseSamples, errors.New("no sample sets defined"))
	}

	seen := make(map[string]struct{}, len(f.Samples))
	for _, s := range f.Samples {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: missing name", ErrContextInvalidSample)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%s %q: defined twice", ErrContextInvalidSample, s.Name)
		}
		seen[s.Name] = struct{}{}

		if err := domain.ValidateSpinnable(textsToOptions(s.Options)); err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrContextInvalidSample, s.Name, err)
		}
	}
	return f.Samples, nil
}

var builtinSamples = sync.OnceValues(func() ([]domain.SampleSet, error) {
	return ParseSamples(samplesYAML)
})

// BuiltinSamples returns the embedded sample sets
func BuiltinSamples() []domain.SampleSet {
	samples, err := builtinSamples()
	if err != nil {
		panic(err)
	}
	return samples
}

func findSample(samples []domain.SampleSet, name string) (domain.SampleSet, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s, true
		}
	}
	return domain.SampleSet{}, false
}

// textsToOptions builds fresh options with palette colors by index
func textsToOptions(texts []string) []domain.Option {
	opts := make([]domain.Option, len(texts))
	for i, t := range texts {
		opts[i] = newOption(t, domain.ColorForIndex(i))
	}
	return opts
}
