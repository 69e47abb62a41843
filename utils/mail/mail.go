package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/arjunkmr/hoteldesk/logger"
)

var templates *template.Template

// InitTemplates parses the embedded email templates. Must be called once at
// startup before any mail is sent.
func InitTemplates(fs embed.FS) {
	templates = template.Must(template.ParseFS(fs, "templates/email/*.html"))
}

// ReceiptData fills the payment receipt template.
type ReceiptData struct {
	HotelName     string
	CustomerName  string
	RoomNumber    string
	RoomType      string
	CheckInDate   string
	CheckOutDate  string
	TotalAmount   string
	AmountPaid    string
	BalanceAmount string
	PaymentMode   string
	PaymentDate   string
}

// SendPaymentReceipt emails a payment receipt to the customer. Callers
// usually run it in a goroutine so a slow SMTP server does not hold up the
// payment response.
func SendPaymentReceipt(toEmail string, data ReceiptData) error {
	if data.HotelName == "" {
		data.HotelName = os.Getenv("HOTEL_NAME")
	}
	return sendEmail(toEmail, "Payment Receipt - "+data.HotelName, "payment_receipt.html", data)
}

func sendEmail(toEmail, subject, templateName string, data interface{}) error {
	if templates == nil {
		return fmt.Errorf("email templates not initialized")
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		logger.ErrorLogger.Errorf("Failed to execute email template %s: %v", templateName, err)
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body.String())

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASSWORD"),
	)

	start := time.Now()
	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoLogger.Infof("Email sent to %s in %v", toEmail, time.Since(start))
	return nil
}
