package helper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"Tech Meetup":           "tech-meetup",
		"  Tech   Meetup 2026 ": "tech-meetup-2026",
		"Seminar: AI & Data!":   "seminar-ai-data",
		"---":                   "x",
		"":                      "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE events (event_slug TEXT)`).Error)

	// tabel kosong → base dipakai langsung
	slug, err := EnsureUniqueSlug(db, "tech-meetup", "events", "event_slug")
	require.NoError(t, err)
	assert.Equal(t, "tech-meetup", slug)

	require.NoError(t, db.Exec(`INSERT INTO events VALUES ('tech-meetup')`).Error)
	slug, err = EnsureUniqueSlug(db, "tech-meetup", "events", "event_slug")
	require.NoError(t, err)
	assert.Equal(t, "tech-meetup-2", slug)

	require.NoError(t, db.Exec(`INSERT INTO events VALUES ('tech-meetup-2'), ('tech-meetup-7')`).Error)
	slug, err = EnsureUniqueSlug(db, "tech-meetup", "events", "event_slug")
	require.NoError(t, err)
	assert.Equal(t, "tech-meetup-8", slug)
}
