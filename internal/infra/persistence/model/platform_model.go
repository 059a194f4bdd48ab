// Package model holds the GORM table definitions of the sales store.
package model

// PlatformModel is the GORM-specific struct for the 'platforms' table.
type PlatformModel struct {
	PlatformID   int64  `gorm:"column:platform_id;primaryKey;autoIncrement"`
	PlatformName string `gorm:"column:platform_name;type:varchar(100);not null;uniqueIndex:ux_platforms_name"`

	Orders []OrderModel `gorm:"foreignKey:PlatformID;references:PlatformID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PlatformModel) TableName() string {
	return "platforms"
}
