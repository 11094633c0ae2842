package domain

import (
	"strings"
	"time"
)

// 永続化フォーマット
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// FormatDate は日付を YYYY-MM-DD で返す。
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime は日時を YYYY-MM-DD HH:MM:SS で返す。
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate は YYYY-MM-DD をローカル時刻の0時として解析する。前後の空白は許さない。
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// trimOptional は任意入力の文字列を正規化する。空文字は未指定として nil を返す。
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// StringPtr は値のポインタを返す。
func StringPtr(s string) *string {
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
