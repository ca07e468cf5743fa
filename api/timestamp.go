package api

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// 不带时区的时间按 UTC 解析
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp 解析 ISO-8601 时间
// dateOnly 表示输入只有日期部分（如 2024-01-31）
func ParseTimestamp(value string) (t time.Time, dateOnly bool, err error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, false, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, false, nil
		}
	}
	if t, err := time.ParseInLocation(dateLayout, value, time.UTC); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid datetime format: %q", value)
}
