package main

import (
	"fmt"

	"github.com/pqc-tools/pqadvise/internal/advisor"
	"github.com/pqc-tools/pqadvise/internal/catalog"
	"github.com/pqc-tools/pqadvise/internal/criteria"
	"github.com/pqc-tools/pqadvise/internal/models"
)

// resolveAdvisor builds an advisor from the --catalog and --criteria flags.
// Empty paths fall back to the built-in catalog and default criteria.
func resolveAdvisor(catalogPath, criteriaPath string) (*advisor.Advisor, error) {
	cat, err := resolveCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	model := criteria.Default()
	if criteriaPath != "" {
		model, err = criteria.LoadFile(criteriaPath)
		if err != nil {
			return nil, fmt.Errorf("loading criteria %s: %w", criteriaPath, err)
		}
	}

	return advisor.New(cat, model)
}

// runAdvisory loads a profile and produces one advisory for it.
func runAdvisory(profilePath, catalogPath, criteriaPath string) (*models.Advisory, error) {
	profile, err := models.LoadProfile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", profilePath, err)
	}

	eng, err := resolveAdvisor(catalogPath, criteriaPath)
	if err != nil {
		return nil, err
	}
	return eng.Advise(profile)
}

func resolveCatalog(catalogPath string) (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", catalogPath, err)
	}
	return cat, nil
}
