package util

import "time"

// DayStart 返回 t 所在自然日的零点
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRange 返回 t 所在自然日的 [零点, 次日零点) 区间
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// DaysAgo 返回 n 天前那一天的零点
func DaysAgo(t time.Time, n int) time.Time {
	return DayStart(t).AddDate(0, 0, -n)
}
