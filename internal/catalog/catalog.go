// Package catalog holds the fixed port reference list used for maritime
// routing. The catalog is loaded once at startup and never mutated.
package catalog

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/floatchat-backend/internal/domain"
)

// defaultPorts covers the initial Indian Ocean set plus key relay ports
// on the Pacific and Atlantic basins.
var defaultPorts = []domain.Port{
	{Name: "Durban, South Africa", Lat: -29.8587, Lon: 31.0218},
	{Name: "Mombasa, Kenya", Lat: -4.0500, Lon: 39.6667},
	{Name: "Chennai, India", Lat: 13.0827, Lon: 80.2707},
	{Name: "Colombo, Sri Lanka", Lat: 6.9271, Lon: 79.8612},
	{Name: "Chittagong, Bangladesh", Lat: 22.3475, Lon: 91.8123},
	{Name: "Port Louis, Mauritius", Lat: -20.1610, Lon: 57.5029},
	{Name: "Singapore", Lat: 1.290270, Lon: 103.851959},
	{Name: "Shanghai, China", Lat: 31.2304, Lon: 121.4737},
	{Name: "Yokohama, Japan", Lat: 35.4437, Lon: 139.6380},
	{Name: "Los Angeles, USA", Lat: 33.7297, Lon: -118.2625},
	{Name: "Sydney, Australia", Lat: -33.8688, Lon: 151.2093},
	{Name: "Rotterdam, Netherlands", Lat: 51.9244, Lon: 4.4777},
	{Name: "New York, USA", Lat: 40.7306, Lon: -73.9865},
	{Name: "Santos, Brazil", Lat: -23.9910, Lon: -46.3813},
	{Name: "Lagos, Nigeria", Lat: 6.4531, Lon: 3.3958},
}

// Catalog is an immutable port list.
type Catalog struct {
	ports []domain.Port
}

// Load builds the catalog from a YAML file, or from the embedded default
// list when path is empty.
func Load(path string) (*Catalog, error) {
	ports := defaultPorts

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read port catalog: %w", err)
		}
		var loaded []domain.Port
		if err := v.UnmarshalKey("ports", &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse port catalog: %w", err)
		}
		if len(loaded) > 0 {
			ports = loaded
		}
	}

	if err := validate(ports); err != nil {
		return nil, err
	}

	out := make([]domain.Port, len(ports))
	copy(out, ports)
	return &Catalog{ports: out}, nil
}

func validate(ports []domain.Port) error {
	seen := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate port name in catalog: %q", p.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// All returns the ports in catalog order. Callers must not modify the
// returned slice; a copy is handed out to keep the catalog immutable.
func (c *Catalog) All() []domain.Port {
	out := make([]domain.Port, len(c.ports))
	copy(out, c.ports)
	return out
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.ports)
}

// FindDestination resolves a destination by case-insensitive substring
// match against port names, in catalog order. The match works in either
// direction so a query with trailing content ("Singapore, ") still hits
// the catalog entry "Singapore".
func (c *Catalog) FindDestination(name string) (domain.Port, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return domain.Port{}, false
	}
	for _, p := range c.ports {
		portName := strings.ToLower(p.Name)
		if strings.Contains(portName, needle) || strings.Contains(needle, portName) {
			return p, true
		}
	}
	return domain.Port{}, false
}
