package repository

import (
	"time"

	"gorm.io/gorm"
)

// ActiveOnly returns a GORM scope that filters catalog rows to active ones.
// Deactivated venues, room types and packages stay referencable from old
// quotations but are hidden from pickers.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// EventDateBetween returns a GORM scope filtering by event date range.
// Nil bounds are open-ended.
func EventDateBetween(from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where("event_date >= ?", *from)
		}
		if to != nil {
			db = db.Where("event_date <= ?", *to)
		}
		return db
	}
}

// SearchILike returns a GORM scope matching the search term against the
// given columns with a case-insensitive LIKE.
func SearchILike(search string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + search + "%"
		clause := ""
		args := make([]interface{}, 0, len(columns))
		for i, col := range columns {
			if i > 0 {
				clause += " OR "
			}
			clause += col + " ILIKE ?"
			args = append(args, pattern)
		}
		return db.Where(clause, args...)
	}
}
