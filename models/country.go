package models

import "locationseed/types"

type Country struct {
	ID        int           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string        `json:"name" gorm:"type:varchar(50);not null;unique"`
	Iso3      string        `json:"iso3" gorm:"type:varchar(3);not null;unique"`
	Iso2      string        `json:"iso2" gorm:"type:varchar(2);not null;unique"`
	PhoneCode types.RawText `json:"phoneCode" gorm:"column:phoneCode;type:varchar(20)"`
}

func (Country) TableName() string {
	return "country"
}
