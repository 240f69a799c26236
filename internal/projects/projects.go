// SPDX-License-Identifier: MIT

// Package projects stores named theme inputs. Only inputs are persisted;
// themes are regenerated from them on demand.
package projects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/models"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

var (
	ErrNotFound    = errors.New("project not found")
	ErrExists      = errors.New("project already exists")
	ErrInvalidName = errors.New("invalid project name")
	ErrInvalid     = errors.New("invalid theme inputs")
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// descriptions are plain text; markup is stripped
var descriptionPolicy = bluemonday.StrictPolicy()

// ValidateName checks that name is a lowercase slug usable in URLs
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use lowercase letters, digits and dashes)", ErrInvalidName, name)
	}
	return nil
}

// Normalize validates in and fills the harmony and background strategy
// defaults. Errors wrap ErrInvalid. The primary must parse, and so must a
// non-empty secondary even though generation alone would drop it.
func Normalize(in designer.Inputs) (designer.Inputs, error) {
	in.Primary = strings.TrimSpace(in.Primary)
	in.Secondary = strings.TrimSpace(in.Secondary)

	if _, err := oklch.Parse(in.Primary); err != nil {
		return in, fmt.Errorf("%w: primary: %w", ErrInvalid, err)
	}
	if in.Secondary != "" {
		if _, err := oklch.Parse(in.Secondary); err != nil {
			return in, fmt.Errorf("%w: secondary: %w", ErrInvalid, err)
		}
	}

	h, err := harmony.Parse(string(in.Harmony))
	if err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	in.Harmony = h

	bs, err := tokens.ParseBackgroundStrategy(string(in.BackgroundStrategy))
	if err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	in.BackgroundStrategy = bs

	if in.Radius < 0 || in.Radius > 1 {
		return in, fmt.Errorf("%w: radius %v out of range [0, 1]", ErrInvalid, in.Radius)
	}
	return in, nil
}

// Create stores a new project with the given inputs. A soft-deleted
// project with the same name is purged first.
func Create(db *gorm.DB, name, description string, in designer.Inputs) (*models.Project, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	in, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	var existing models.Project
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, name)
	}

	// Purge a soft-deleted project holding the unique name
	var deleted models.Project
	if err := db.Unscoped().Where("name = ? AND deleted_at IS NOT NULL", name).First(&deleted).Error; err == nil {
		if err := db.Where("project_id = ?", deleted.ID).Delete(&models.Revision{}).Error; err != nil {
			return nil, fmt.Errorf("failed to purge old revisions: %w", err)
		}
		if err := db.Unscoped().Delete(&deleted).Error; err != nil {
			return nil, fmt.Errorf("failed to purge deleted project: %w", err)
		}
	}

	project := &models.Project{
		Name:        name,
		Description: strings.TrimSpace(descriptionPolicy.Sanitize(description)),
	}
	setInputs(project, in)

	if err := db.Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Get retrieves a project by name
func Get(db *gorm.DB, name string) (*models.Project, error) {
	var project models.Project
	result := db.Where("name = ?", name).First(&project)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load project: %w", result.Error)
	}
	return &project, nil
}

// List returns all projects ordered by name
func List(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("name").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Delete soft-deletes a project
func Delete(db *gorm.DB, name string) error {
	result := db.Where("name = ?", name).Delete(&models.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Apply replaces a project's inputs, stamps AppliedAt and records a revision.
func Apply(db *gorm.DB, name string, in designer.Inputs) (*models.Project, error) {
	in, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	var project models.Project
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return err
		}

		now := time.Now()
		setInputs(&project, in)
		project.AppliedAt = &now
		if err := tx.Save(&project).Error; err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		revision := &models.Revision{
			ProjectID:          project.ID,
			PrimaryColor:       in.Primary,
			SecondaryColor:     in.Secondary,
			Harmony:            string(in.Harmony),
			BackgroundStrategy: string(in.BackgroundStrategy),
			Radius:             in.Radius,
		}
		if err := tx.Create(revision).Error; err != nil {
			return fmt.Errorf("failed to record revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// History returns a project's revisions, newest first
func History(db *gorm.DB, name string) ([]models.Revision, error) {
	project, err := Get(db, name)
	if err != nil {
		return nil, err
	}
	var revisions []models.Revision
	if err := db.Where("project_id = ?", project.ID).Order("id DESC").Find(&revisions).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return revisions, nil
}

// Inputs converts a stored project back to editable inputs
func Inputs(p *models.Project) designer.Inputs {
	return designer.Inputs{
		Primary:            p.PrimaryColor,
		Secondary:          p.SecondaryColor,
		Harmony:            harmony.Type(p.Harmony),
		BackgroundStrategy: tokens.BackgroundStrategy(p.BackgroundStrategy),
		Radius:             p.Radius,
	}
}

func setInputs(p *models.Project, in designer.Inputs) {
	p.PrimaryColor = in.Primary
	p.SecondaryColor = in.Secondary
	p.Harmony = string(in.Harmony)
	p.BackgroundStrategy = string(in.BackgroundStrategy)
	p.Radius = in.Radius
}
