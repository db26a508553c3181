// Package branding describes the event title and sponsor logos shown around the countdown.
package branding

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed branding.yaml
var defaultBranding []byte

// Logo is an image shown in the header or footer
type Logo struct {
	Path   string  `yaml:"path"`
	Alt    string  `yaml:"alt"`
	Height float32 `yaml:"height"`
}

// Branding is the event presentation
type Branding struct {
	Title  string `yaml:"title"`
	Header []Logo `yaml:"header"`
	Footer []Logo `yaml:"footer"`
}

// Default returns the branding compiled into the binary
func Default() (*Branding, error) {
	return Parse(defaultBranding)
}

// Parse decodes branding YAML
func Parse(data []byte) (*Branding, error) {
	b := &Branding{}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse branding: %w", err)
	}
	if b.Title == "" {
		b.Title = "Hackathon Countdown"
	}
	return b, nil
}

// Resolve returns the logos whose image files exist, with paths made
// relative to baseDir when they are not absolute
func Resolve(logos []Logo, baseDir string) []Logo {
	resolved := make([]Logo, 0, len(logos))
	for _, logo := range logos {
		path := logo.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			log.Printf("Skipping logo %q: %v", logo.Alt, err)
			continue
		}
		logo.Path = path
		resolved = append(resolved, logo)
	}
	return resolved
}
