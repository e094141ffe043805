package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

const icalTimeLayout = "20060102T150405"

// buildICalInvite собирает iCalendar приглашение (METHOD:REQUEST) для записи.
// Времена локальные ("floating"): заведение одно, все события в его поясе.
func buildICalInvite(appt *domain.Appointment, serviceName string, cfg Config, eventID string, now time.Time) (string, error) {
	end, err := appt.EndTime()
	if err != nil {
		return "", err
	}

	start := combineDateTime(appt.Date, appt.StartTime.Minutes())
	finish := combineDateTime(appt.Date, end.Minutes())

	description := fmt.Sprintf("Client: %s\\nPhone: %s\\nEmail: %s", appt.Name, appt.Phone, appt.Email)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//" + cfg.ShopName + "//booking-service//EN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		"UID:" + eventID,
		"DTSTAMP:" + now.UTC().Format(icalTimeLayout) + "Z",
		"DTSTART:" + start.Format(icalTimeLayout),
		"DTEND:" + finish.Format(icalTimeLayout),
		"SUMMARY:" + escapeICalText(fmt.Sprintf("%s - %s", cfg.ShopName, serviceName)),
		"DESCRIPTION:" + description,
		"LOCATION:" + escapeICalText(cfg.ShopAddress),
		"ORGANIZER;CN=" + escapeICalText(cfg.ShopName) + ":mailto:" + cfg.OwnerEmail,
		"ATTENDEE:mailto:" + cfg.OwnerEmail,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// combineDateTime собирает момент времени из даты и минут с начала суток
func combineDateTime(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// escapeICalText экранирует спецсимволы текстовых полей iCalendar (RFC 5545)
func escapeICalText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
