package models

import "time"

type Address struct {
	ID         uint      `gorm:"column:address_id;primaryKey;autoIncrement" json:"address_id"`
	AlumniID   uint      `gorm:"column:alumni_id;not null;index" json:"alumni_id"`
	Street     string    `gorm:"column:street;size:255;not null" json:"street"`
	City       string    `gorm:"column:city;size:255;not null" json:"city"`
	State      string    `gorm:"column:state;size:255;not null" json:"state"`
	PostalCode string    `gorm:"column:postal_code;size:20;not null" json:"postal_code"`
	Country    string    `gorm:"column:country;size:100;not null" json:"country"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}
