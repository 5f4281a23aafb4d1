// Package content holds the site copy: node labels and positions,
// feature cards, benefits and roles. It is embedded at build time and
// never changes while the process runs.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

var Module = fx.Module("content",
	fx.Provide(Load),
)

//go:embed site.yaml
var siteYAML []byte

// Category is the kind of network participant a node marker stands for
type Category string

const (
	Funder    Category = "funder"
	Developer Category = "developer"
	Business  Category = "business"
)

var categories = []Category{Funder, Developer, Business}

// Valid reports whether c is one of the three known categories
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

type Site struct {
	Brand  Brand  `yaml:"brand"`
	Hero   Hero   `yaml:"hero"`
	About  About  `yaml:"about"`
	Join   Join   `yaml:"join"`
	Footer Footer `yaml:"footer"`
}

type Brand struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Blurb    string `yaml:"blurb"`
}

type Hero struct {
	Badge string `yaml:"badge"`
	Image string `yaml:"image"`
	Nodes []Node `yaml:"nodes"`
	Lines []Line `yaml:"lines"`
}

// Node is a marker on the hero banner. X and Y are percentages of the
// banner size, Delay is the entrance delay in seconds.
type Node struct {
	Category Category `yaml:"category"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Label    string   `yaml:"label"`
	Delay    float64  `yaml:"delay"`
}

// Line connects two points on the hero banner, in percentages
type Line struct {
	X1    float64 `yaml:"x1"`
	Y1    float64 `yaml:"y1"`
	X2    float64 `yaml:"x2"`
	Y2    float64 `yaml:"y2"`
	Delay float64 `yaml:"delay"`
}

type About struct {
	Features []Feature `yaml:"features"`
	Stats    []Stat    `yaml:"stats"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Stat struct {
	Value  string `yaml:"value"`
	Label  string `yaml:"label"`
	Accent string `yaml:"accent"`
}

type Join struct {
	Benefits []string `yaml:"benefits"`
	Roles    []Role   `yaml:"roles"`
}

type Role struct {
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type Footer struct {
	Network []Link `yaml:"network"`
	Social  []Link `yaml:"social"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

// Load decodes and validates the embedded site content
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site content from YAML
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}
	return &site, nil
}

// Validate checks coordinates, categories and roles
func (s *Site) Validate() error {
	var errs []error

	if s.Brand.Name == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}

	for i, n := range s.Hero.Nodes {
		if !n.Category.Valid() {
			errs = append(errs, fmt.Errorf("hero.nodes[%d]: unknown category %q", i, n.Category))
		}
		if !inPercent(n.X) || !inPercent(n.Y) {
			errs = append(errs, fmt.Errorf("hero.nodes[%d]: position (%g,%g) outside 0..100", i, n.X, n.Y))
		}
		if n.Delay < 0 {
			errs = append(errs, fmt.Errorf("hero.nodes[%d]: negative delay", i))
		}
		if n.Label == "" {
			errs = append(errs, fmt.Errorf("hero.nodes[%d]: label is required", i))
		}
	}

	for i, l := range s.Hero.Lines {
		if !inPercent(l.X1) || !inPercent(l.Y1) || !inPercent(l.X2) || !inPercent(l.Y2) {
			errs = append(errs, fmt.Errorf("hero.lines[%d]: endpoint outside 0..100", i))
		}
		if l.Delay < 0 {
			errs = append(errs, fmt.Errorf("hero.lines[%d]: negative delay", i))
		}
	}

	if len(s.Join.Roles) == 0 {
		errs = append(errs, errors.New("join.roles must not be empty"))
	}
	seen := make(map[string]bool, len(s.Join.Roles))
	for i, r := range s.Join.Roles {
		if r.Value == "" {
			errs = append(errs, fmt.Errorf("join.roles[%d]: value is required", i))
			continue
		}
		if seen[r.Value] {
			errs = append(errs, fmt.Errorf("join.roles[%d]: duplicate value %q", i, r.Value))
		}
		seen[r.Value] = true
	}

	return errors.Join(errs...)
}

// RoleValues lists the accepted role values in display order
func (s *Site) RoleValues() []string {
	values := make([]string, len(s.Join.Roles))
	for i, r := range s.Join.Roles {
		values[i] = r.Value
	}
	return values
}

func inPercent(v float64) bool {
	return v >= 0 && v <= 100
}
