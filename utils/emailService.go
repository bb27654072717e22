package utils

import (
	"edureg/config"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("[EMAIL] SENDGRID_API_KEY not set, skipping email to %s", to)
		return nil
	}

	from := mail.NewEmail("EduCentral", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}

	return nil
}

// getEmailTemplate wraps body content in the EduCentral layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E3A5F; line-height: 1.6; }
			.content h2 { color: #1E3A5F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.status-badge { display: inline-block; padding: 4px 12px; border-radius: 4px; font-size: 14px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUCENTRAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduCentral. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendStatusDecisionEmail notifies the applicant of a review decision.
// Delivery is fire-and-forget; a failed email never fails the transition.
func SendStatusDecisionEmail(email, name, status string) {
	statusColor := "#28A745"
	title := "Application Approved"
	detail := "Congratulations! Your registration has been approved. The school administration will contact you with onboarding details."
	if status == "rejected" {
		statusColor = "#DC3545"
		title = "Application Update"
		detail = "We regret to inform you that your registration was not approved. You may contact the administration office for details."
	}

	subject := "Your Teacher Registration: " + title
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>There is an update on your teacher registration application.</p>
		<div style="margin: 20px 0;">
			<span class="status-badge" style="background-color: %s;">%s</span>
		</div>
		<p>%s</p>
	`, name, statusColor, status, detail)

	go SendEmail(email, subject, getEmailTemplate(title, body))
}

// SendPendingDigestEmail reports the pending application backlog to the admin
func SendPendingDigestEmail(email string, count int64, since time.Time) error {
	subject := fmt.Sprintf("Pending Teacher Applications: %d awaiting review", count)
	body := fmt.Sprintf(`
		<p>There are <strong>%d</strong> pending teacher applications submitted since %s.</p>
		<p>Login to the admin dashboard to review them.</p>
	`, count, since.Format("02 Jan 2006"))

	return SendEmail(email, subject, getEmailTemplate("Daily Review Digest", body))
}
