package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email via SMTP.
func SendEmail(to, subject, body string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

func otpBody(heading, purpose, otp string) string {
	return fmt.Sprintf(`
		<h2>%s</h2>
		<p>Hello,</p>
		<p>Your one-time password (OTP) for %s is:</p>
		<h1 style="font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This code is valid for 10 minutes. Please do not share this OTP with anyone.</p>
		<p>If you did not request this, please ignore this email.</p>
	`, heading, purpose, otp)
}

// SendOTP sends a registration verification OTP via email.
func SendOTP(to, otp string) error {
	return SendEmail(to, "Your Verification Code - VMR Solution",
		otpBody("Welcome to VMR Solution!", "completing your registration", otp))
}

// SendLoginOTP sends a login OTP via email.
func SendLoginOTP(to, otp string) error {
	return SendEmail(to, "Login Verification Code - VMR Solution",
		otpBody("Secure Login", "logging into VMR Solution", otp))
}

// SendPasswordResetOTP sends a password reset OTP via email.
func SendPasswordResetOTP(to, otp string) error {
	return SendEmail(to, "Password Reset Code - VMR Solution",
		otpBody("Password Reset Request", "resetting your password", otp))
}
