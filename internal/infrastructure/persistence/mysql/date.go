package mysql

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/xiebiao/bookshelf/pkg/validator"
)

// Date DATE列的日历日期
// 写入时直接传 "YYYY-MM-DD" 字符串,不经过驱动按DSN loc的时区换算;
// 读出时只取年月日,统一为UTC零点
type Date time.Time

func newDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date(calendarDay(*t))
	return &d
}

// Time 转回领域层使用的 *time.Time
func (d *Date) Time() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

// Value 实现 driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return time.Time(d).Format(validator.DateLayout), nil
}

// Scan 实现 sql.Scanner
// parseTime=true 时驱动按DSN loc返回当天零点,关闭时返回[]byte
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date(time.Time{})
	case time.Time:
		*d = Date(calendarDay(v))
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("无法将 %T 扫描为 Date", value)
	}
	return nil
}

// GormDataType 迁移时的列类型
func (Date) GormDataType() string {
	return "date"
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(validator.DateLayout, s)
	if err != nil {
		return fmt.Errorf("解析日期 %q 失败: %w", s, err)
	}
	*d = Date(t)
	return nil
}

// calendarDay 按t自身时区取年月日,返回UTC零点
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
