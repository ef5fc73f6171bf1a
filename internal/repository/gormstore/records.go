package gormstore

// menuRecord is the GORM mapping of tbl_menu. Field names match model.Menu so
// the mapper can copy between the two.
type menuRecord struct {
	MenuCode        int64  `gorm:"column:menu_code;primaryKey;autoIncrement"`
	MenuName        string `gorm:"column:menu_name;size:30;not null"`
	MenuPrice       int    `gorm:"column:menu_price;not null;index"`
	CategoryCode    int64  `gorm:"column:category_code;not null;index"`
	OrderableStatus string `gorm:"column:orderable_status;size:1;not null;default:Y"`
}

func (menuRecord) TableName() string { return "tbl_menu" }

// categoryRecord owns the tbl_menu foreign key, so AutoMigrate puts the
// constraint on tbl_menu. Menus is never preloaded.
type categoryRecord struct {
	CategoryCode    int64        `gorm:"column:category_code;primaryKey;autoIncrement"`
	CategoryName    string       `gorm:"column:category_name;size:30;not null"`
	RefCategoryCode *int64       `gorm:"column:ref_category_code"`
	Menus           []menuRecord `gorm:"foreignKey:CategoryCode;references:CategoryCode;constraint:OnDelete:RESTRICT"`
}

func (categoryRecord) TableName() string { return "tbl_category" }
