package service

import (
	"time"

	"github.com/haconeco/project-task-tracker/internal/domain"
)

const (
	MinWeek = 1
	MaxWeek = 53

	// 週選択肢として提示する週数
	pickerWeeks = 52

	weekLabelLayout = "01/02"
)

// WeekSpan は週番号と月曜・日曜の表示用日付の組。
type WeekSpan struct {
	Week   int
	Monday string
	Sunday string
}

// WeekBounds は週番号に対応する月曜日と日曜日を返す。
// 1月1日が月〜木曜ならその週を第1週とし、金〜日曜なら翌週の月曜から第1週とする。
// ISO 8601 の週番号とは年によって一致しないが、既存データの表示と合わせるためこの規則を使う。
func WeekBounds(week, year int) (monday, sunday time.Time, err error) {
	if week < MinWeek || week > MaxWeek {
		return time.Time{}, time.Time{}, domain.NewValidationError("week", domain.ErrInvalidWeek)
	}

	janFirst := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	weekday := (int(janFirst.Weekday()) + 6) % 7 // 月曜=0
	var firstMonday time.Time
	if weekday <= 3 {
		firstMonday = janFirst.AddDate(0, 0, -weekday)
	} else {
		firstMonday = janFirst.AddDate(0, 0, 7-weekday)
	}

	monday = firstMonday.AddDate(0, 0, 7*(week-1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday, nil
}

// WeekRange は週番号に対応する月曜日と日曜日を MM/DD 形式で返す。
func WeekRange(week, year int) (string, string, error) {
	monday, sunday, err := WeekBounds(week, year)
	if err != nil {
		return "", "", err
	}
	return monday.Format(weekLabelLayout), sunday.Format(weekLabelLayout), nil
}

// WeekSpans は週選択肢（第1〜52週）の日付範囲を返す。
func WeekSpans(year int) []WeekSpan {
	spans := make([]WeekSpan, 0, pickerWeeks)
	for week := 1; week <= pickerWeeks; week++ {
		monday, sunday, _ := WeekRange(week, year)
		spans = append(spans, WeekSpan{Week: week, Monday: monday, Sunday: sunday})
	}
	return spans
}

// ISOWeekOf は YYYY-MM-DD のISO週番号を返す。解析できない場合は ok=false。
func ISOWeekOf(date string) (week int, ok bool) {
	t, ok := domain.ParseDate(date)
	if !ok {
		return 0, false
	}
	_, week = t.ISOWeek()
	return week, true
}
