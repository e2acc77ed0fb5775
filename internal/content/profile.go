// Package content provides the windows a visitor can open: the catalog of
// titles with their sizes and the renderers for each one.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed profile.toml
var defaultProfile []byte

// Profile is the portfolio data rendered into the windows.
type Profile struct {
	Owner     Owner     `toml:"owner"`
	Projects  Projects  `toml:"projects"`
	Skills    Skills    `toml:"skills"`
	Resume    Resume    `toml:"resume"`
	Contact   Contact   `toml:"contact"`
	EasterEgg EasterEgg `toml:"easter_egg"`
}

type Owner struct {
	Name    string `toml:"name"`
	Tagline string `toml:"tagline"`
}

type Projects struct {
	Intro string    `toml:"intro"`
	Items []Project `toml:"items"`
}

// Project is one card in Projects.exe. Description may contain inline
// markdown.
type Project struct {
	Name        string   `toml:"name"`
	Headline    string   `toml:"headline"`
	Description string   `toml:"description"`
	Tags        []string `toml:"tags"`
	URL         string   `toml:"url"`
}

type Skills struct {
	Footer     string          `toml:"footer"`
	Categories []SkillCategory `toml:"categories"`
}

type SkillCategory struct {
	Name  string  `toml:"name"`
	Items []Skill `toml:"items"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
}

type Resume struct {
	URL      string `toml:"url"`
	Markdown string `toml:"markdown"`
}

type Contact struct {
	Links []Link `toml:"links"`
}

type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type EasterEgg struct {
	Markdown string `toml:"markdown"`
}

// DefaultProfile returns the built-in portfolio.
func DefaultProfile() *Profile {
	p, err := ParseProfile(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("content: embedded profile is invalid: %v", err))
	}
	return p
}

// ParseProfile decodes a profile document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	for i := range p.Skills.Categories {
		for j := range p.Skills.Categories[i].Items {
			s := &p.Skills.Categories[i].Items[j]
			s.Level = min(max(s.Level, 0), 100)
		}
	}
	return &p, nil
}

// LoadProfile reads the profile at path, falling back to the built-in one
// when the file does not exist.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}
