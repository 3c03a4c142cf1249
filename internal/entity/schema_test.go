package entity

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The workflow tables must be linked to their referents by real foreign keys,
// not just indexed columns.
func TestMigrationCreatesForeignKeys(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Pet{}, &Application{}, &Question{}, &Choice{}, &QuestionnaireResponse{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cases := []struct {
		model      interface{}
		constraint string
	}{
		{&Application{}, "User"},
		{&Application{}, "Pet"},
		{&QuestionnaireResponse{}, "User"},
		{&QuestionnaireResponse{}, "Question"},
		{&Question{}, "Choices"},
	}

	for _, c := range cases {
		if !db.Migrator().HasConstraint(c.model, c.constraint) {
			t.Errorf("missing foreign key constraint %s on %T", c.constraint, c.model)
		}
	}
}
