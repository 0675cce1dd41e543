package database

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSeedCatalogue(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedCatalogue(db))

	var courses []model.Course
	require.NoError(t, db.Preload("Materials").Order("id asc").Find(&courses).Error)
	require.Len(t, courses, 3)

	premium := 0
	for _, c := range courses {
		assert.Len(t, c.Materials, 3)
		if c.Premium {
			premium++
		}
	}
	assert.Equal(t, 1, premium)

	var questions int64
	require.NoError(t, db.Model(&model.QuizQuestion{}).Count(&questions).Error)
	assert.EqualValues(t, 9, questions)

	// seeding again must not duplicate the catalogue
	require.NoError(t, SeedCatalogue(db))
	var count int64
	require.NoError(t, db.Model(&model.Course{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
