package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendBriefReady(toEmail, businessName string) error
	SendPagePublished(toEmail, pageURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendBriefReady(toEmail, businessName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Strategy Brief Is Ready")

	briefLink := fmt.Sprintf("%s/onboarding/brief", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your brief for %s is ready</h2>
			<p>We have finished putting together your strategy brief. Review it here:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Brief</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, businessName, briefLink, briefLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send brief notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Brief notification sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPagePublished(toEmail, pageURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Page Is Live")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, your page is live!</h2>
			<p>Your landing page has been published and is now reachable at:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Visit Your Page</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, pageURL, pageURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send publish notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Publish notification sent to %s\n", toEmail)
	return nil
}
