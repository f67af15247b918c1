package models

import "locationseed/types"

type City struct {
	ID        int           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string        `json:"name" gorm:"type:varchar(90);not null"`
	Latitude  types.RawText `json:"latitude" gorm:"type:float8"`
	Longitude types.RawText `json:"longitude" gorm:"type:float8"`
	StateID   int           `json:"stateId" gorm:"column:stateId;not null"`
}

func (City) TableName() string {
	return "city"
}
