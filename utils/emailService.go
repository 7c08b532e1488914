package utils

import (
	"fmt"
	"net/smtp"
	"sat/config"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SecureAware Training <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2E8B57; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2E8B57; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SECUREAWARE TRAINING</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SecureAware. All rights reserved.<br>
				Stay alert. Stay secure.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Employee account created
func SendWelcomeEmail(email, name string, employeeID uint, password string) {
	subject := "Your Security Training Account"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your company has enrolled you in <strong>SecureAware</strong> security awareness training.</p>
		<div class="info-box">
			<strong>Employee ID:</strong> %d<br>
			<strong>Temporary Password:</strong> %s
		</div>
		<p>Please log in and change your password. Your assigned training modules are waiting on your dashboard.</p>
	`, name, employeeID, password)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Company registered
func SendCompanyWelcomeEmail(email, name string, companyID uint, password string) {
	subject := "Your Company Has Been Registered"
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p><strong>%s</strong> is now registered on SecureAware security awareness training.</p>
		<div class="info-box">
			<strong>Company ID:</strong> %d<br>
			<strong>Admin Password:</strong> %s
		</div>
		<p>Use these credentials on the company admin portal to add employees and assign training.</p>
	`, name, companyID, password)

	go SendEmail([]string{email}, subject, getEmailTemplate("Company Registered", body))
}

// 3. Password reset
func SendPasswordResetEmail(email, name, token string) {
	subject := "Password Reset Request"
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.AppBaseURL, token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Click the button below to choose a new one.</p>
		<p style="text-align:center;"><a class="btn" href="%s">Reset Password</a></p>
		<p>This link expires in 1 hour. If you did not request a reset, you can ignore this email.</p>
	`, name, resetLink)

	go SendEmail([]string{email}, subject, getEmailTemplate("Reset Your Password", body))
}

// 4. Module completed, certificate earned
func SendCertificateEmail(email, name, moduleTitle string, score int) {
	subject := "Training Completed: " + moduleTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You passed the quiz for:</p>
		<h3 style="text-align:center; color:#2E8B57;">%s</h3>
		<div class="info-box">
			<strong>Your Score:</strong> %d%%
		</div>
		<p>Your completion certificate is available on your dashboard.</p>
	`, name, moduleTitle, score)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate Earned!", body))
}

// 5. Overdue assignment reminder
func SendReminderEmail(email, name, moduleTitle string, daysPending int) {
	subject := "Reminder: Pending Security Training"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a friendly reminder that the following training module has been pending for <strong>%d days</strong>:</p>
		<h3 style="text-align:center; color:#1A2B4C;">%s</h3>
		<p>Please log in and complete it at your earliest convenience.</p>
	`, name, daysPending, moduleTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Training Reminder", body))
}

// 6. Weekly digest to company contact
func SendWeeklyDigestEmail(email, companyName string, completionRate float64, completed, total int64) {
	subject := "Weekly Training Digest: " + companyName
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Here is this week's security training summary for <strong>%s</strong>:</p>
		<div class="info-box">
			<strong>Completion Rate:</strong> %.1f%%<br>
			<strong>Completed Assignments:</strong> %d of %d
		</div>
		<p>Visit the admin portal for the full progress report.</p>
	`, companyName, completionRate, completed, total)

	go SendEmail([]string{email}, subject, getEmailTemplate("Weekly Digest", body))
}
