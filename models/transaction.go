package models

import (
	"fmt"
	"strings"
	"time"
)

// 交易类型
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction 收支记录
// Category 为冗余的类别名称，仅在写入时按名称同步，不随类别变化
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Amount      int       `json:"amount" gorm:"index"`
	Type        string    `json:"type" gorm:"size:16;index"`
	Category    string    `json:"category" gorm:"size:255;index"`
	Description string    `json:"description" gorm:"size:255;index"`
	Date        time.Time `json:"date"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// GetTransactionTypes 获取所有合法的交易类型
func GetTransactionTypes() []string {
	return []string{
		TransactionTypeIncome,
		TransactionTypeExpense,
	}
}

// IsValidTransactionType 判断交易类型是否合法
func IsValidTransactionType(t string) bool {
	for _, valid := range GetTransactionTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// InvalidTransactionTypeMessage 非法交易类型的错误信息，包含非法值与合法取值
func InvalidTransactionTypeMessage(t string) string {
	quoted := make([]string, 0, len(GetTransactionTypes()))
	for _, valid := range GetTransactionTypes() {
		quoted = append(quoted, "'"+valid+"'")
	}
	return fmt.Sprintf("Invalid transaction_type: %s. should be: [%s]", t, strings.Join(quoted, ", "))
}
