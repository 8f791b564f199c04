package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendOTPEmail(email, name, otp string) error
	SendNewOTPEmail(email, name, otp string) error
	SendLoginNotification(adminEmail, userName, role string) error
	SendCommentNotification(adminEmail, userName string, blogID int, content string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendOTPEmail(email, name, otp string) error {
	body := fmt.Sprintf(`
		<p>Hello <strong>%s</strong>,</p>
		<p>Your OTP for account verification is:</p>
		<h2>%s</h2>
		<p>This code is valid for 10 minutes.</p>
	`, name, otp)

	if err := s.send(email, "OTP Verification - Blogify", body); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

func (s *emailService) SendNewOTPEmail(email, name, otp string) error {
	body := fmt.Sprintf(`
		<p>Hello <strong>%s</strong>,</p>
		<p>Your new OTP is:</p>
		<h2>%s</h2>
		<p>This code is valid for 10 minutes.</p>
	`, name, otp)

	if err := s.send(email, "New OTP Verification - Blogify", body); err != nil {
		return fmt.Errorf("failed to send new OTP email: %w", err)
	}
	return nil
}

func (s *emailService) SendLoginNotification(adminEmail, userName, role string) error {
	body := fmt.Sprintf(
		`<p>User <strong>%s</strong> just logged in with role <strong>%s</strong>.</p>`,
		userName, role,
	)
	if err := s.send(adminEmail, "User Login Notification", body); err != nil {
		return fmt.Errorf("failed to send login notification: %w", err)
	}
	return nil
}

func (s *emailService) SendCommentNotification(adminEmail, userName string, blogID int, content string) error {
	body := fmt.Sprintf(`
		<p>User <strong>%s</strong> commented on blog ID <strong>%d</strong>:</p>
		<blockquote>%s</blockquote>
	`, userName, blogID, content)

	if err := s.send(adminEmail, "New Comment Notification", body); err != nil {
		return fmt.Errorf("failed to send comment notification: %w", err)
	}
	return nil
}
