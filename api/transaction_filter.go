package api

import (
	"fmt"
	"time"

	"ledger/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var dateColumn = clause.Column{Table: clause.CurrentTable, Name: "date"}

// transactionFilter 交易查询条件，nil 表示不限制
type transactionFilter struct {
	Type     *string
	Category *string
	Start    *time.Time
	End      *time.Time
	// End 为开区间上界（结束日期只给到天时使用次日零点）
	EndExclusive bool
}

// setRange 解析起止时间，空字符串表示不限制
func (f *transactionFilter) setRange(start, end string) error {
	if start != "" {
		t, _, err := ParseTimestamp(start)
		if err != nil {
			return fmt.Errorf("start_date: %w", err)
		}
		t = t.UTC()
		f.Start = &t
	}
	if end != "" {
		t, dateOnly, err := ParseTimestamp(end)
		if err != nil {
			return fmt.Errorf("end_date: %w", err)
		}
		t = t.UTC()
		if dateOnly {
			t = t.AddDate(0, 0, 1)
			f.EndExclusive = true
		}
		f.End = &t
	}
	return nil
}

func (f transactionFilter) apply(db *gorm.DB) *gorm.DB {
	conds := map[string]interface{}{}
	if f.Type != nil {
		conds["type"] = *f.Type
	}
	// 按冗余的类别名称字段匹配，不做关联查询
	if f.Category != nil {
		conds["category"] = *f.Category
	}
	if len(conds) > 0 {
		db = db.Where(conds)
	}
	if f.Start != nil {
		db = db.Where(clause.Gte{Column: dateColumn, Value: *f.Start})
	}
	if f.End != nil {
		if f.EndExclusive {
			db = db.Where(clause.Lt{Column: dateColumn, Value: *f.End})
		} else {
			db = db.Where(clause.Lte{Column: dateColumn, Value: *f.End})
		}
	}
	return db
}

func (f transactionFilter) find(db *gorm.DB) ([]models.Transaction, error) {
	list := make([]models.Transaction, 0)
	if err := f.apply(db.Model(&models.Transaction{})).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
