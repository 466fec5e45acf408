package utils

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendMail delivers one email through SendGrid. The caller decides whether a
// failure is fatal to the request.
func SendMail(toName, toEmail, subject, plainText, htmlContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return errors.New("SENDGRID_API_KEY is not set")
	}

	fromName := os.Getenv("MAIL_FROM_NAME")
	if fromName == "" {
		fromName = "PUP Alumni Portal"
	}
	fromEmail := os.Getenv("MAIL_FROM_ADDRESS")
	if fromEmail == "" {
		return errors.New("MAIL_FROM_ADDRESS is not set")
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
