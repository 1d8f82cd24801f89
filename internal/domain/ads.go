package domain

// AdFormat is the layout hint sent to the ad network
type AdFormat string

const (
	AdFormatAuto       AdFormat = "auto"
	AdFormatRectangle  AdFormat = "rectangle"
	AdFormatVertical   AdFormat = "vertical"
	AdFormatHorizontal AdFormat = "horizontal"
)

// Valid reports whether f is one of the known formats
func (f AdFormat) Valid() bool {
	switch f {
	case AdFormatAuto, AdFormatRectangle, AdFormatVertical, AdFormatHorizontal:
		return true
	}
	return false
}

// AdSize is a width x height pair in CSS pixels
type AdSize struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// AdPlacement is a fixed location on the page where an ad can be shown
type AdPlacement struct {
	Name        string   `yaml:"name" json:"name"`
	ContainerID string   `yaml:"container_id" json:"container_id"`
	Slot        string   `yaml:"slot" json:"slot"`
	Format      AdFormat `yaml:"format" json:"format"`
	Mobile      AdSize   `yaml:"mobile" json:"mobile"`
	Tablet      AdSize   `yaml:"tablet" json:"tablet"`
	Desktop     AdSize   `yaml:"desktop" json:"desktop"`

	// ShowAfterSpins, when set, shows the placement once every N spins
	ShowAfterSpins int `yaml:"show_after_spins" json:"show_after_spins,omitempty"`
}

// AdUnit is a placement that has been rendered for the current page
type AdUnit struct {
	ContainerID string   `json:"container_id"`
	Placement   string   `json:"placement"`
	Slot        string   `json:"slot"`
	Format      AdFormat `json:"format"`
	PublisherID string   `json:"publisher_id"`
}
