package api

import (
	"testing"
	"time"

	"ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransactionFilter_SetRange(t *testing.T) {
	var f transactionFilter
	require.NoError(t, f.setRange("2024-01-01", "2024-01-31"))

	require.NotNil(t, f.Start)
	require.NotNil(t, f.End)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.Start)
	// 只给到日期的结束时间包含当天全天
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *f.End)
	assert.True(t, f.EndExclusive)
}

func TestTransactionFilter_SetRange_Timestamps(t *testing.T) {
	var f transactionFilter
	require.NoError(t, f.setRange("2024-01-01T00:00:00Z", "2024-01-31T12:00:00+08:00"))

	assert.Equal(t, time.Date(2024, 1, 31, 4, 0, 0, 0, time.UTC), *f.End)
	assert.False(t, f.EndExclusive)
}

func TestTransactionFilter_SetRange_Invalid(t *testing.T) {
	var f transactionFilter
	assert.ErrorContains(t, f.setRange("bad", ""), "start_date")
	assert.ErrorContains(t, f.setRange("", "bad"), "end_date")
}

func TestTransactionFilter_SQL(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	typ, category := "expense", "Food"
	f := transactionFilter{Type: &typ, Category: &category}
	require.NoError(t, f.setRange("2024-01-01", "2024-01-31T00:00:00Z"))

	var list []models.Transaction
	stmt := f.apply(db.Session(&gorm.Session{DryRun: true}).Model(&models.Transaction{})).Find(&list).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "`category` = ?")
	assert.Contains(t, sql, "`type` = ?")
	assert.Contains(t, sql, "`transactions`.`date` >= ?")
	// 带时间的结束边界为闭区间
	assert.Contains(t, sql, "`transactions`.`date` <= ?")
	assert.Len(t, stmt.Vars, 4)
}

func TestTransactionFilter_Empty(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	var list []models.Transaction
	stmt := transactionFilter{}.apply(db.Session(&gorm.Session{DryRun: true}).Model(&models.Transaction{})).Find(&list).Statement

	assert.NotContains(t, stmt.SQL.String(), "WHERE")
}
