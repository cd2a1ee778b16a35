package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
}

func NewMailer() (*Mailer, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &Mailer{dialer: dialer}, nil
}

// SendLowStockAlert mails the inventory manager when a product drops to or
// below its low-stock threshold after a sale or adjustment.
func (s *Mailer) SendLowStockAlert(toEmail string, product *Product) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Low Stock Alert - %s", product.Name))

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Low Stock Alert</h2>
	<p><strong>%s</strong> is running low.</p>
	<ul>
		<li>Current quantity: %d</li>
		<li>Low stock threshold: %d</li>
		<li>Category: %s</li>
	</ul>
	<p>Consider creating a purchase order to restock.</p>
	<p style="color: #666; font-size: 12px;">Smart Supermarket - automated message</p>
</body>
</html>`, product.Name, product.Quantity, product.LowStockThreshold, product.Category)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
