// SPDX-License-Identifier: MIT
package projects

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/models"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestCreateProject(t *testing.T) {
	db := setupTestDB(t)

	project, err := Create(db, "acme", "Acme brand", designer.Inputs{Primary: " #3b82f6 ", Radius: 0.5})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if project.Name != "acme" {
		t.Errorf("Expected name acme, got %s", project.Name)
	}
	if project.PrimaryColor != "#3b82f6" {
		t.Errorf("Expected trimmed primary, got %q", project.PrimaryColor)
	}
	if project.Harmony != string(harmony.Monochromatic) {
		t.Errorf("Expected default harmony, got %s", project.Harmony)
	}
	if project.BackgroundStrategy != string(tokens.Neutral) {
		t.Errorf("Expected neutral strategy, got %s", project.BackgroundStrategy)
	}
	if project.AppliedAt != nil {
		t.Error("New project should not be applied yet")
	}
}

func TestCreateStripsMarkup(t *testing.T) {
	db := setupTestDB(t)

	project, err := Create(db, "markup", "<b>Acme</b> brand<script>alert(1)</script>", designer.Inputs{Primary: "#fff"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if project.Description != "Acme brand" {
		t.Errorf("Expected markup stripped, got %q", project.Description)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name    string
		project string
		in      designer.Inputs
		want    error
	}{
		{"bad name", "Acme Brand", designer.Inputs{Primary: "#fff"}, ErrInvalidName},
		{"empty name", "", designer.Inputs{Primary: "#fff"}, ErrInvalidName},
		{"bad harmony", "a", designer.Inputs{Primary: "#fff", Harmony: "pentadic"}, harmony.ErrUnknownHarmony},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Create(db, tt.project, "", tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	for name, in := range map[string]designer.Inputs{
		"nocolor":      {Primary: "blue-ish"},
		"badsecondary": {Primary: "#fff", Secondary: "nope"},
		"badstrategy":  {Primary: "#fff", BackgroundStrategy: "gradient"},
		"badradius":    {Primary: "#fff", Radius: 3},
	} {
		if _, err := Create(db, name, "", in); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
	if _, err := Create(db, "nocolor", "", designer.Inputs{Primary: "blue-ish"}); !errors.Is(err, oklch.ErrUnparseable) {
		t.Errorf("Expected unparseable primary to wrap oklch.ErrUnparseable, got %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Create(db, "dup", "", designer.Inputs{Primary: "#111"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := Create(db, "dup", "", designer.Inputs{Primary: "#222"})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("Expected ErrExists, got %v", err)
	}
}

func TestGetAndList(t *testing.T) {
	db := setupTestDB(t)

	Create(db, "zeta", "", designer.Inputs{Primary: "#e11d48"})
	Create(db, "alpha", "", designer.Inputs{Primary: "#059669"})

	project, err := Get(db, "zeta")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if project.PrimaryColor != "#e11d48" {
		t.Errorf("Expected #e11d48, got %s", project.PrimaryColor)
	}

	if _, err := Get(db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	list, err := List(db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].Name != "alpha" || list[1].Name != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", list)
	}
}

func TestDeleteAndRecreate(t *testing.T) {
	db := setupTestDB(t)

	Create(db, "reuse", "", designer.Inputs{Primary: "#111"})
	if _, err := Apply(db, "reuse", designer.Inputs{Primary: "#333"}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if err := Delete(db, "reuse"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := Get(db, "reuse"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Deleted project still visible: %v", err)
	}
	if err := Delete(db, "reuse"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	project, err := Create(db, "reuse", "", designer.Inputs{Primary: "#222"})
	if err != nil {
		t.Fatalf("Recreate after delete failed: %v", err)
	}
	if project.PrimaryColor != "#222" {
		t.Errorf("Expected fresh inputs, got %s", project.PrimaryColor)
	}

	history, err := History(db, "reuse")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected old revisions purged, got %d", len(history))
	}
}

func TestApplyRecordsRevisions(t *testing.T) {
	db := setupTestDB(t)

	Create(db, "brand", "", designer.Inputs{Primary: "#64748b"})

	first := designer.Inputs{Primary: "#3b82f6", Harmony: harmony.Triadic}
	second := designer.Inputs{Primary: "#3b82f6", Secondary: "#f59e0b", BackgroundStrategy: tokens.PrimaryTinted, Radius: 0.75}

	if _, err := Apply(db, "brand", first); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	project, err := Apply(db, "brand", second)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if project.AppliedAt == nil {
		t.Error("AppliedAt not set")
	}

	stored, _ := Get(db, "brand")
	got := Inputs(stored)
	want := second
	want.Harmony = harmony.Monochromatic
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	history, err := History(db, "brand")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 revisions, got %d", len(history))
	}
	if history[0].SecondaryColor != "#f59e0b" || history[1].Harmony != string(harmony.Triadic) {
		t.Errorf("Revisions out of order: %+v", history)
	}
}

func TestApplyMissingProject(t *testing.T) {
	db := setupTestDB(t)

	_, err := Apply(db, "ghost", designer.Inputs{Primary: "#fff"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := History(db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from History, got %v", err)
	}
}
