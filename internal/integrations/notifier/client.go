package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// Client отправляет владельцу уведомление о новой записи: текстовое письмо
// с вложенным iCalendar приглашением. Строго best-effort коллаборатор —
// ошибки доставки не влияют на результат бронирования.
type Client struct {
	cfg     Config
	catalog domain.Catalog
	metrics Metrics
	log     Logger

	// подменяется в тестах
	send func(addr string, from string, to []string, msg []byte) error
}

// NewClient создает новый клиент уведомлений
func NewClient(cfg Config, catalog domain.Catalog, metrics Metrics, log Logger) (*Client, error) {
	if cfg.SMTPHost == "" || cfg.SMTPPort == 0 {
		return nil, fmt.Errorf("%w: smtp host and port are required", ErrInvalidConfig)
	}
	if cfg.From == "" || cfg.OwnerEmail == "" {
		return nil, fmt.Errorf("%w: from and owner_email are required", ErrInvalidConfig)
	}

	return &Client{
		cfg:     cfg,
		catalog: catalog,
		metrics: metrics,
		log:     log,
		send: func(addr string, from string, to []string, msg []byte) error {
			return smtp.SendMail(addr, nil, from, to, msg)
		},
	}, nil
}

// NotifyOwner отправляет письмо владельцу и возвращает идентификатор
// созданного события календаря
func (c *Client) NotifyOwner(ctx context.Context, appt *domain.Appointment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	serviceName := string(appt.ServiceID)
	if service, err := c.catalog.Get(appt.ServiceID); err == nil {
		serviceName = service.Name
	}

	eventID := uuid.NewString()

	invite, err := buildICalInvite(appt, serviceName, c.cfg, eventID, appt.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("%w: build invite: %v", ErrSendFailed, err)
	}

	msg := c.buildMessage(appt, serviceName, invite)

	addr := fmt.Sprintf("%s:%d", c.cfg.SMTPHost, c.cfg.SMTPPort)
	if err := c.send(addr, c.cfg.From, []string{c.cfg.OwnerEmail}, []byte(msg)); err != nil {
		if c.metrics != nil {
			c.metrics.IncNotifyFailures()
		}
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("NotifyOwner: notification sent for appointment id=%d, event=%s", appt.ID, eventID)
	return eventID, nil
}

// buildMessage собирает multipart письмо: текстовая часть + text/calendar вложение
func (c *Client) buildMessage(appt *domain.Appointment, serviceName, invite string) string {
	const boundary = "booking-notification-boundary"

	subject := fmt.Sprintf("Nova Rezervacija - %s", serviceName)

	body := fmt.Sprintf(
		"Nova rezervacija:\r\n\r\n"+
			"Usluga: %s\r\n"+
			"Datum: %s\r\n"+
			"Vrijeme: %s\r\n"+
			"Ime: %s\r\n"+
			"Telefon: %s\r\n"+
			"Email: %s\r\n"+
			"Cijena: %.2f KM\r\n",
		serviceName,
		appt.Date.Format(domain.DateFormat),
		appt.StartTime,
		appt.Name,
		appt.Phone,
		appt.Email,
		appt.Price,
	)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", c.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", c.cfg.OwnerEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/calendar; charset=utf-8; method=REQUEST\r\n")
	b.WriteString("Content-Disposition: attachment; filename=\"invite.ics\"\r\n\r\n")
	b.WriteString(invite)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return b.String()
}
