package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking policy defaults
const (
	DefaultSlotStepMinutes  = 5 // шаг генерации кандидатов времени начала
	DefaultMinNoticeMinutes = 0 // на сегодня доступны слоты строго после текущего момента
)

// Business validation constants
const (
	MinNameLength  = 2
	MaxNameLength  = 255
	MinPhoneDigits = 9
	MaxPhoneDigits = 12
)
