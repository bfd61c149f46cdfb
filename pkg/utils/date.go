package utils

import "time"

const monthKeyLayout = "2006-01"

// MonthKey formata a data no padrão yyyy-mm
func MonthKey(date time.Time) string {
	return date.Format(monthKeyLayout)
}

// MonthLabel retorna o nome abreviado do mês (ex: Jan)
func MonthLabel(date time.Time) string {
	return date.Format("Jan")
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth considera anos bissextos
func DaysInMonth(date time.Time) int {
	return FirstDayOfMonth(date).AddDate(0, 1, -1).Day()
}
