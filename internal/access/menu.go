package access

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

//go:embed menu.yaml
var menuDocument []byte

// Entry is one navigation item.
type Entry struct {
	Route string       `yaml:"route" json:"route"`
	Label string       `yaml:"label" json:"label"`
	Icon  string       `yaml:"icon" json:"icon"`
	Roles []model.Role `yaml:"roles" json:"-"`
}

// TestID is the stable element id used by UI tests, e.g. "nav-purchase-orders".
func (e Entry) TestID() string {
	return "nav-" + strings.Replace(strings.ToLower(e.Label), " ", "-", 1)
}

// VisibleTo reports whether role is listed on the entry.
func (e Entry) VisibleTo(role model.Role) bool {
	return slices.Contains(e.Roles, role)
}

// Menu is the ordered navigation table.
type Menu []Entry

// ParseMenu decodes a YAML menu document and checks every route and role.
func ParseMenu(doc []byte) (Menu, error) {
	var menu Menu
	if err := yaml.Unmarshal(doc, &menu); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	known := model.AllRoles()
	seen := make(map[string]struct{}, len(menu))
	for i, entry := range menu {
		if entry.Route == "" || entry.Label == "" {
			return nil, fmt.Errorf("menu entry %d: route and label are required", i+1)
		}
		if _, dup := seen[entry.Route]; dup {
			return nil, fmt.Errorf("menu entry %d: duplicate route %s", i+1, entry.Route)
		}
		seen[entry.Route] = struct{}{}
		for _, role := range entry.Roles {
			if !slices.Contains(known, role) {
				return nil, fmt.Errorf("menu entry %s: unknown role %q", entry.Route, role)
			}
		}
	}
	return menu, nil
}

var loadDefault = sync.OnceValues(func() (Menu, error) {
	return ParseMenu(menuDocument)
})

// LoadMenu returns the built-in navigation table.
func LoadMenu() (Menu, error) {
	menu, err := loadDefault()
	if err != nil {
		return nil, err
	}
	return slices.Clone(menu), nil
}

// DefaultMenu is LoadMenu for callers that cannot handle an error.
func DefaultMenu() Menu {
	menu, err := LoadMenu()
	if err != nil {
		panic(err)
	}
	return menu
}

// Filter returns the entries role may see, in menu order.
// An unknown role sees nothing.
func Filter(menu Menu, role model.Role) []Entry {
	visible := make([]Entry, 0, len(menu))
	for _, entry := range menu {
		if entry.VisibleTo(role) {
			visible = append(visible, entry)
		}
	}
	return visible
}

// Allows reports whether role may open route.
func Allows(menu Menu, route string, role model.Role) bool {
	for _, entry := range menu {
		if entry.Route == route {
			return entry.VisibleTo(role)
		}
	}
	return false
}
