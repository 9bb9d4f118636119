package menu

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxCategoryLen    = 50
	maxPrice          = 100000
	minPrepMinutes    = 1
	maxPrepMinutes    = 180
)

// ValidateInput checks a menu item submission against the catalog
// contract. The first failing field aborts the whole submission —
// there are no partial writes.
func ValidateInput(in *MenuItemInput) error {
	if in == nil {
		return errors.New("menu item is required")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)

	if in.Name == "" {
		return errors.New("name is required")
	}
	if len(in.Name) > maxNameLen {
		return fmt.Errorf("name must be less than %d characters", maxNameLen)
	}

	if len(in.Description) > maxDescriptionLen {
		return fmt.Errorf("description must be less than %d characters", maxDescriptionLen)
	}

	if in.Price <= 0 {
		return errors.New("price must be positive")
	}
	if in.Price > maxPrice {
		return errors.New("price is too high")
	}

	if in.Category == "" {
		return errors.New("category is required")
	}
	if len(in.Category) > maxCategoryLen {
		return fmt.Errorf("category must be less than %d characters", maxCategoryLen)
	}

	if in.PreparationTime < minPrepMinutes {
		return fmt.Errorf("preparation time must be at least %d minute", minPrepMinutes)
	}
	if in.PreparationTime > maxPrepMinutes {
		return fmt.Errorf("preparation time must be less than %d minutes", maxPrepMinutes)
	}

	if in.ImageURL != "" {
		u, err := url.Parse(in.ImageURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("invalid image URL")
		}
	}

	return nil
}
