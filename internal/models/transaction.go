package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is a single product sale record.
type Transaction struct {
	ID          uint      `json:"id" bson:"id" gorm:"primaryKey"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price" gorm:"index"`
	Category    string    `json:"category" bson:"category" gorm:"index"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Sold        bool      `json:"sold" bson:"sold"`
	DateOfSale  time.Time `json:"dateOfSale" bson:"dateOfSale" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.DateOfSale = t.DateOfSale.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the DateOfSale to UTC.
//
// Range filters compare the stored values, so every row
// needs to use the same offset.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.DateOfSale = t.DateOfSale.In(time.UTC)
	return nil
}

// CategoryCount is the number of transactions in one category.
type CategoryCount struct {
	Category  string `json:"category" bson:"category" example:"electronics"`
	ItemCount int64  `json:"itemCount" bson:"itemCount" example:"4"`
}
