package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeOrdered restricts a query to visible rows in display order. Rows with
// the same order keep insertion order.
func activeOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Scopes(displayOrder)
}

func displayOrder(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}
