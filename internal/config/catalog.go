package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the static reference data served by the API.
type Catalog struct {
	Categories       []string `yaml:"categories"`
	FeaturedPlans    []string `yaml:"featured_plans"`
	ResumeExtensions []string `yaml:"resume_extensions"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []string{
			"Frontend Development",
			"Backend Development",
			"Full Stack Development",
			"Mobile Development",
			"DevOps",
			"Data Science / Analytics",
			"UI/UX Design",
			"Other",
		},
		FeaturedPlans:    []string{"premium", "enterprise"},
		ResumeExtensions: []string{"pdf", "doc", "docx"},
	}
}

// LoadCatalog reads a YAML catalog. Sections left empty keep their defaults.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()

	b, err := os.ReadFile(path)
	if err != nil {
		return cat, err
	}

	var fromFile Catalog
	if err := yaml.Unmarshal(b, &fromFile); err != nil {
		return cat, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(fromFile.Categories) > 0 {
		cat.Categories = fromFile.Categories
	}
	if len(fromFile.FeaturedPlans) > 0 {
		cat.FeaturedPlans = fromFile.FeaturedPlans
	}
	if len(fromFile.ResumeExtensions) > 0 {
		cat.ResumeExtensions = fromFile.ResumeExtensions
	}
	return cat, nil
}

func (c Catalog) IsFeaturedPlan(plan string) bool {
	for _, p := range c.FeaturedPlans {
		if p == plan {
			return true
		}
	}
	return false
}

// AllowsResume reports whether filename has an allowed extension.
func (c Catalog) AllowsResume(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range c.ResumeExtensions {
		if strings.EqualFold(strings.TrimPrefix(allowed, "."), ext) {
			return true
		}
	}
	return false
}
