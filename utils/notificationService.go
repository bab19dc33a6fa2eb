package utils

import (
	"log"

	"shikkha/config"
	"shikkha/database"
	"shikkha/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// AddNotification persists an unread in-app notification for the user.
// Fire-and-forget: failures are logged, never surfaced to the caller.
func AddNotification(userID uint, title, description, link string) {
	notification := models.Notification{
		UserID:      userID,
		Title:       title,
		Description: description,
		Link:        link,
		Read:        false,
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[NOTIFY] Failed to store notification for user %d: %v", userID, err)
	}
}

// NotifyUser stores an in-app notification and emails the user a copy
// in the background.
func NotifyUser(user *models.User, title, description, link string) {
	AddNotification(user.ID, title, description, link)
	go SendEmail(user.Email, title, notificationEmailBody(user.Name, title, description, link))
}

// SendEmail delivers an HTML email through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("[NOTIFY] SENDGRID_API_KEY not set, skipping email to %s", to)
		return nil
	}

	from := mail.NewEmail("Shikkha", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[NOTIFY] Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[NOTIFY] SendGrid returned %d for email to %s", resp.StatusCode, to)
	}
	return nil
}

func notificationEmailBody(name, title, description, link string) string {
	body := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + title + `</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2563eb;">` + title + `</h2>
        <p>Dear ` + name + `,</p>
        <p>` + description + `</p>`
	if link != "" {
		body += `
        <div style="margin: 30px 0;">
            <a href="` + config.AppConfig.FrontendBaseURL + link + `" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px;">View Details</a>
        </div>`
	}
	body += `
        <hr style="border: 1px solid #eee; margin: 20px 0;">
        <p style="font-size: 12px; color: #666;">This is an automated notification from Shikkha.</p>
    </div>
</body>
</html>`
	return body
}
