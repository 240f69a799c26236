// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a named set of theme inputs. Generated themes are never stored;
// they are recomputed from these fields.
type Project struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	Name               string         `gorm:"uniqueIndex;not null" json:"name"`
	Description        string         `json:"description,omitempty"`
	PrimaryColor       string         `gorm:"not null" json:"primary"`
	SecondaryColor     string         `json:"secondary,omitempty"`
	Harmony            string         `gorm:"default:monochromatic" json:"harmony"`
	BackgroundStrategy string         `gorm:"default:neutral" json:"background_strategy"`
	Radius             float64        `json:"radius"`
	AppliedAt          *time.Time     `json:"applied_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Revisions []Revision `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// Revision is one applied input tuple in a project's history
type Revision struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ProjectID          uint      `gorm:"not null;index" json:"-"`
	PrimaryColor       string    `gorm:"not null" json:"primary"`
	SecondaryColor     string    `json:"secondary,omitempty"`
	Harmony            string    `json:"harmony"`
	BackgroundStrategy string    `json:"background_strategy"`
	Radius             float64   `json:"radius"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName overrides for consistent naming
func (Project) TableName() string {
	return "projects"
}

func (Revision) TableName() string {
	return "project_revisions"
}

// All lists every model for migration
func All() []any {
	return []any{&Project{}, &Revision{}}
}
