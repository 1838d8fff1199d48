package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-action-web/models"
	"github.com/pelletier/go-toml/v2"
)

// routesFile is the layout shared by JSON and TOML route files:
//
//	{"routes": [{"path": "/ping", "methods": ["get"], "pattern": "role:web,cmd:ping", "autoreply": true}]}
//
//	[[routes]]
//	path = "/ping"
//	methods = ["get"]
//	pattern = "role:web,cmd:ping"
//	autoreply = true
type routesFile struct {
	Routes []models.Route `json:"routes" toml:"routes"`
}

// LoadRoutes reads route descriptors from path. The format is chosen by the
// file extension: ".json" or ".toml".
func LoadRoutes(path string) ([]models.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading routes file: %w", err)
	}

	return ParseRoutes(filepath.Ext(path), data)
}

// ParseRoutes decodes route descriptors from data in the format named by
// ext (".json" or ".toml").
func ParseRoutes(ext string, data []byte) ([]models.Route, error) {
	var file routesFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error decoding json routes: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error decoding toml routes: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRoutesFormat, ext)
	}

	return file.Routes, nil
}
