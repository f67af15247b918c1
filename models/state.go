package models

import "locationseed/types"

type State struct {
	ID        int           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string        `json:"name" gorm:"type:varchar(60);not null"`
	StateCode types.RawText `json:"stateCode" gorm:"column:stateCode;type:varchar(10)"`
	CountryID int           `json:"countryId" gorm:"column:countryId;not null"`
}

func (State) TableName() string {
	return "state"
}
