package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

func testConfig() Config {
	return Config{
		SMTPHost:    "localhost",
		SMTPPort:    1025,
		From:        "noreply@royal-barbershop.ba",
		OwnerEmail:  "owner@royal-barbershop.ba",
		ShopName:    "Royal Barbershop",
		ShopAddress: "Ferhadija 12, Sarajevo",
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ServiceID:       domain.ServiceHaircut,
		Price:           8,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 20,
		Name:            "Marko Marković",
		Phone:           "38765123456",
		Email:           "marko@example.com",
		CreatedAt:       time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildICalInvite(t *testing.T) {
	appt := testAppointment()

	invite, err := buildICalInvite(appt, "Šišanje", testConfig(), "event-123", appt.CreatedAt)
	require.NoError(t, err)

	assert.Contains(t, invite, "BEGIN:VCALENDAR")
	assert.Contains(t, invite, "METHOD:REQUEST")
	assert.Contains(t, invite, "UID:event-123")
	assert.Contains(t, invite, "DTSTAMP:20260901T093000Z")
	assert.Contains(t, invite, "DTSTART:20260907T100000")
	assert.Contains(t, invite, "DTEND:20260907T102000")
	assert.Contains(t, invite, "SUMMARY:Royal Barbershop - Šišanje")
	assert.Contains(t, invite, "LOCATION:Ferhadija 12\\, Sarajevo")
	assert.Contains(t, invite, "ATTENDEE:mailto:owner@royal-barbershop.ba")
	assert.Contains(t, invite, "END:VCALENDAR")

	// строки разделены CRLF
	assert.True(t, strings.HasSuffix(invite, "END:VCALENDAR\r\n"))
	for _, line := range strings.Split(strings.TrimSuffix(invite, "\r\n"), "\r\n") {
		assert.NotContains(t, line, "\n")
	}
}

func TestBuildICalInvite_EndTimeFromDuration(t *testing.T) {
	appt := testAppointment()
	appt.ServiceID = domain.ServiceShaveAndHaircut
	appt.StartTime = types.TimeString("15:30")
	appt.DurationMinutes = 30

	invite, err := buildICalInvite(appt, "Brijanje i Šišanje", testConfig(), "event-456", appt.CreatedAt)
	require.NoError(t, err)

	assert.Contains(t, invite, "DTSTART:20260907T153000")
	assert.Contains(t, invite, "DTEND:20260907T160000")
}

func TestEscapeICalText(t *testing.T) {
	assert.Equal(t, `a\, b\; c\\d`, escapeICalText(`a, b; c\d`))
	assert.Equal(t, `line1\nline2`, escapeICalText("line1\nline2"))
	assert.Equal(t, "plain", escapeICalText("plain"))
}
