// Package validator 业务格式校验(ISBN、日期)
//
// 同一套校验逻辑暴露为两种形式:
//   - gin binding tag: `binding:"isbn"`、`binding:"date"`(HTTP请求绑定时校验)
//   - ozzo-validation规则: validator.ISBN、validator.NotBlank(领域输入Validate()时校验)
package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// DateLayout 日期格式 YYYY-MM-DD
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISBN 校验ISBN-10或ISBN-13(含校验位)
// 允许使用连字符或空格分隔,如 978-7-115-42802-8
func IsISBN(s string) bool {
	clean := strings.NewReplacer("-", "", " ", "").Replace(s)
	switch len(clean) {
	case 10:
		return isISBN10(clean)
	case 13:
		return isISBN13(clean)
	default:
		return false
	}
}

func isISBN10(s string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case (c == 'X' || c == 'x') && i == 9:
			d = 10
		default:
			return false
		}
		sum += (10 - i) * d
	}
	return sum%11 == 0
}

func isISBN13(s string) bool {
	sum := 0
	for i := 0; i < 13; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}

// IsDate 校验 YYYY-MM-DD 且为真实存在的日期
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate 解析 YYYY-MM-DD 为UTC零点,nil或空串返回nil
// 日期列按日历日期存取,与连接的loc无关
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if !IsDate(*s) {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// =========================================
// ozzo-validation 规则
// =========================================

// ISBN ozzo规则:非空时必须是合法ISBN
var ISBN = validation.By(func(value interface{}) error {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return nil
	}
	if !IsISBN(s) {
		return errors.New("must be a valid ISBN-10 or ISBN-13")
	}
	return nil
})

// NotBlank ozzo规则:非nil时不能是纯空白
var NotBlank = validation.By(func(value interface{}) error {
	v, _ := validation.Indirect(value)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if ok && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

func stringValue(value interface{}) (string, bool) {
	v, _ := validation.Indirect(value)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// =========================================
// gin binding 注册
// =========================================

// RegisterGinValidators 向gin默认校验引擎注册 isbn、date 两个tag
// 必须在注册路由之前调用
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("isbn", func(fl playground.FieldLevel) bool {
		return IsISBN(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("date", func(fl playground.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
}
