package services

import (
	"context"
	"fmt"
	"log"

	"concertify/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", data.Email)
	return nil
}

// SendArtistLinked notifies an account that an artist profile was registered
// and linked to it, using the "artist_linked" template.
func (s *emailService) SendArtistLinked(ctx context.Context, data *domain.ArtistLinkedEmailData) error {
	if data == nil {
		return fmt.Errorf("artist linked email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("artist_linked", data)
	if err != nil {
		return fmt.Errorf("failed to render artist_linked template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send artist-linked email: %w", err)
	}
	log.Printf("[EMAIL] Artist-linked email sent to %s", data.Email)
	return nil
}
