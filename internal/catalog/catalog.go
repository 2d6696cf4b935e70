// Package catalog holds the vehicle models, trims and base prices used to
// prefill a vehicle selection.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
)

// DefaultYear is the model year used when a selection does not name one.
const DefaultYear = "2026"

var (
	ErrModelNotFound = errors.New("vehicle model not found")
	ErrTrimNotFound  = errors.New("vehicle trim not found")
)

//go:embed vehicles.toml
var defaultCatalog string

// Trim is one trim level of a model.
type Trim struct {
	Name  string  `toml:"name" json:"name"`
	Price float64 `toml:"price" json:"price"`
}

// Model is a vehicle model with its base price and trims.
type Model struct {
	Name      string  `toml:"-" json:"name"`
	BasePrice float64 `toml:"base_price" json:"base_price"`
	Category  string  `toml:"category" json:"category"`
	Trims     []Trim  `toml:"trims" json:"trims"`
}

type catalogFile struct {
	Models map[string]Model `toml:"models"`
}

// Catalog is an immutable set of vehicle models keyed by name.
type Catalog struct {
	models map[string]Model
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load returns the catalog stored at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	var f catalogFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return build(f)
}

// Parse decodes a TOML catalog document.
func Parse(data string) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return build(f)
}

func build(f catalogFile) (*Catalog, error) {
	if len(f.Models) == 0 {
		return nil, errors.New("catalog has no models")
	}
	models := make(map[string]Model, len(f.Models))
	for name, m := range f.Models {
		if m.BasePrice < 0 {
			return nil, fmt.Errorf("model %s: base price must be >= 0", name)
		}
		for _, t := range m.Trims {
			if t.Name == "" || t.Price < 0 {
				return nil, fmt.Errorf("model %s: invalid trim %q", name, t.Name)
			}
		}
		m.Name = name
		models[name] = m
	}
	return &Catalog{models: models}, nil
}

// Models returns every model name in alphabetical order.
func (c *Catalog) Models() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Model finds a model by name. An exact match wins over a case-insensitive one.
func (c *Catalog) Model(name string) (Model, error) {
	if m, ok := c.models[name]; ok {
		return m, nil
	}
	for key, m := range c.models {
		if strings.EqualFold(key, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %q", ErrModelNotFound, name)
}

// Trims returns the trims of a model.
func (c *Catalog) Trims(model string) ([]Trim, error) {
	m, err := c.Model(model)
	if err != nil {
		return nil, err
	}
	return m.Trims, nil
}

// Trim finds one trim of a model.
func (c *Catalog) Trim(model, trim string) (Trim, error) {
	m, err := c.Model(model)
	if err != nil {
		return Trim{}, err
	}
	for _, t := range m.Trims {
		if t.Name == trim || strings.EqualFold(t.Name, strings.TrimSpace(trim)) {
			return t, nil
		}
	}
	return Trim{}, fmt.Errorf("%w: %q for %s", ErrTrimNotFound, trim, m.Name)
}

// MSRP is the trim price when a trim is given, else the model's base price.
func (c *Catalog) MSRP(model, trim string) (float64, error) {
	if trim == "" {
		m, err := c.Model(model)
		if err != nil {
			return 0, err
		}
		return m.BasePrice, nil
	}
	t, err := c.Trim(model, trim)
	if err != nil {
		return 0, err
	}
	return t.Price, nil
}

// ByCategory returns the models of a category ordered by name.
func (c *Catalog) ByCategory(category string) []Model {
	var out []Model
	for _, name := range c.Models() {
		m := c.models[name]
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

// InPriceRange returns the models with at least one trim priced within
// [minPrice, maxPrice]. Only the matching trims are kept.
func (c *Catalog) InPriceRange(minPrice, maxPrice float64) []Model {
	var out []Model
	for _, name := range c.Models() {
		m := c.models[name]
		var trims []Trim
		for _, t := range m.Trims {
			if t.Price >= minPrice && t.Price <= maxPrice {
				trims = append(trims, t)
			}
		}
		if len(trims) > 0 {
			m.Trims = trims
			out = append(out, m)
		}
	}
	return out
}

// Selection resolves a vehicle selection from the catalog, filling the MSRP
// from the trim or base price and the year with DefaultYear.
func (c *Catalog) Selection(model, trim, year, color string) (calculations.VehicleSelection, error) {
	m, err := c.Model(model)
	if err != nil {
		return calculations.VehicleSelection{}, err
	}
	msrp := m.BasePrice
	if trim != "" {
		t, err := c.Trim(m.Name, trim)
		if err != nil {
			return calculations.VehicleSelection{}, err
		}
		trim, msrp = t.Name, t.Price
	}
	if year == "" {
		year = DefaultYear
	}
	return calculations.VehicleSelection{
		Model: m.Name,
		Trim:  trim,
		MSRP:  msrp,
		Year:  year,
		Color: color,
	}, nil
}

var seriesAliases = map[string]string{
	"rav4":          "RAV4",
	"camry":         "Camry",
	"corolla":       "Corolla",
	"highlander":    "Highlander",
	"prius":         "Prius",
	"sienna":        "Sienna",
	"tacoma":        "Tacoma",
	"tundra":        "Tundra",
	"4runner":       "4Runner",
	"corolla-cross": "Corolla Cross",
	"corollacross":  "Corolla Cross",
}

// ParseConfiguratorLink extracts the model and year from a configurator URL
// whose path contains ".../series/<name>/.../year/<year>/...".
func ParseConfiguratorLink(link string) (model, year string, err error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", "", fmt.Errorf("parse link: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		switch parts[i] {
		case "series":
			model = seriesAliases[strings.ToLower(parts[i+1])]
		case "year":
			year = parts[i+1]
		}
	}
	if model == "" {
		return "", "", fmt.Errorf("%w: no series in link", ErrModelNotFound)
	}
	return model, year, nil
}
