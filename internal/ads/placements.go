package ads

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

//go:embed placements.yaml
var placementsYAML []byte

type placementsFile struct {
	Placements []domain.AdPlacement `yaml:"placements"`
}

// ParsePlacements decodes and validates a placements document
func ParsePlacements(data []byte) ([]domain.AdPlacement, error) {
	var f placementsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParsePlacements, err)
	}

	names := make(map[string]struct{}, len(f.Placements))
	containers := make(map[string]struct{}, len(f.Placements))
	for i, p := range f.Placements {
		if p.Name == "" || p.ContainerID == "" || p.Slot == "" {
			return nil, fmt.Errorf("%s %d: name, container_id and slot are required", ErrContextInvalidPlacement, i)
		}
		if p.Format == "" {
			f.Placements[i].Format = domain.AdFormatAuto
		} else if !p.Format.Valid() {
			return nil, fmt.Errorf("%s %q: unknown format %q", ErrContextInvalidPlacement, p.Name, p.Format)
		}
		if _, dup := names[p.Name]; dup {
			return nil, fmt.Errorf("%s %q: defined twice", ErrContextInvalidPlacement, p.Name)
		}
		if _, dup := containers[p.ContainerID]; dup {
			return nil, fmt.Errorf("%s %q: container %q reused", ErrContextInvalidPlacement, p.Name, p.ContainerID)
		}
		names[p.Name] = struct{}{}
		containers[p.ContainerID] = struct{}{}
	}
	return f.Placements, nil
}

var defaultPlacements = sync.OnceValues(func() ([]domain.AdPlacement, error) {
	return ParsePlacements(placementsYAML)
})

// DefaultPlacements returns a copy of the embedded placements
func DefaultPlacements() []domain.AdPlacement {
	placements, err := defaultPlacements()
	if err != nil {
		panic(err)
	}
	out := make([]domain.AdPlacement, len(placements))
	copy(out, placements)
	return out
}
