package models

// Category 交易类别
type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Category string `json:"category" gorm:"size:255;index"`
	// 删除类别时由数据库级联删除其下所有交易
	Transactions []Transaction `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}
