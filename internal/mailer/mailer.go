// Package mailer delivers rendered receipt documents over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"receiptpro/internal/mailtmpl"
	"receiptpro/internal/model"

	"github.com/jordan-wright/email"
	log "github.com/sirupsen/logrus"
)

// Dispatcher submits one receipt email per call. Transport failures are not
// errors to the caller: they are logged and reported as a false result, and
// the caller decides what that means for the receipt. No retries here.
type Dispatcher interface {
	Send(ctx context.Context, receipt *model.Receipt) bool
}

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	// From is the bare sender address; the brand supplies the display name.
	From string
	// Timeout bounds the whole SMTP exchange. A hung transport must not
	// hang the request; timeout counts as a delivery failure.
	Timeout time.Duration
}

type smtpDispatcher struct {
	cfg Config
	// now is swappable in tests; rendered dates come from it
	now func() time.Time
}

func NewSMTPDispatcher(cfg Config) Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &smtpDispatcher{cfg: cfg, now: time.Now}
}

func (d *smtpDispatcher) Send(ctx context.Context, receipt *model.Receipt) bool {
	brand := mailtmpl.Select(receipt.ProductName, receipt.ProductPrice)

	msg, err := BuildMessage(brand, receipt, d.cfg.From, d.now())
	if err != nil {
		log.WithError(err).WithField("receipt_id", receipt.ID).
			Error("Failed to render receipt email")
		return false
	}

	addr := fmt.Sprintf("%s:%s", d.cfg.Host, d.cfg.Port)
	auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	// email.Send has no context support, so run it off to the side and give
	// up when the deadline passes. The abandoned goroutine finishes (or
	// fails) on its own; the request is already answered by then.
	done := make(chan error, 1)
	go func() {
		done <- msg.Send(addr, auth)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	fields := log.Fields{
		"receipt_id":   receipt.ID,
		"order_number": receipt.OrderNumber,
		"recipient":    receipt.CustomerEmail,
		"brand":        brand.Name,
	}
	if err != nil {
		log.WithError(err).WithFields(fields).Error("Failed to send receipt email")
		return false
	}
	log.WithFields(fields).Info("Receipt email sent")
	return true
}

// BuildMessage assembles the outbound message: brand display name in the
// From header, order number in the subject, HTML body plus a plaintext part.
func BuildMessage(brand mailtmpl.Brand, receipt *model.Receipt, from string, now time.Time) (*email.Email, error) {
	html, err := mailtmpl.Render(brand, receipt, now)
	if err != nil {
		return nil, err
	}

	e := email.NewEmail()
	e.From = fmt.Sprintf("%q <%s>", brand.DisplayName, from)
	e.To = []string{receipt.CustomerEmail}
	e.Subject = fmt.Sprintf("Your %s Receipt - Order #%s", brand.DisplayName, receipt.OrderNumber)
	e.HTML = []byte(html)
	e.Text = []byte(mailtmpl.PlainText(brand, receipt))
	return e, nil
}
