package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"trufapro/internal/domain/sqlite"
	"trufapro/internal/utils/uid"
	"trufapro/internal/utils/validators"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	if err := validate.RegisterValidation("channel", validators.Channel); err != nil {
		t.Fatalf("failed to register channel validator: %v", err)
	}
	return validate
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func init() {
	uid.Init(1)
}
