package repository

import (
	"strings"

	"gorm.io/gorm"
)

// alive excludes soft-deleted rows of table.
func alive(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table + ".deleted_at IS NULL")
	}
}

// likeEscape is portable across MySQL, Postgres and SQLite.
const likeEscape = "ESCAPE '!'"

// containsPattern turns s into a LIKE pattern matching any value that
// contains s literally.
func containsPattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(s) + "%"
}
