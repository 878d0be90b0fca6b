package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/pkg/migration"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50"`
}

type createWidgetsTable struct{}

func (m *createWidgetsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&widget{})
}

func (m *createWidgetsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("widgets")
}

func TestRunAndRollback(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrations?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	migration.Register("20260101000000_create_widgets_table", &createWidgetsTable{})

	runner := migration.New(db)
	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable("widgets"))

	// A second run has nothing left to do and must not fail.
	require.NoError(t, runner.Run())

	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable("widgets"))

	// Rolled-back migrations are pending again.
	pending, err = runner.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
