package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email.
type WelcomeMessageEmailData struct {
	Email string
	Name  string
}

// ArtistLinkedEmailData holds data for the notification sent when an artist
// profile is attached to a user account.
type ArtistLinkedEmailData struct {
	Email      string
	UserName   string
	ArtistName string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
	SendArtistLinked(ctx context.Context, data *ArtistLinkedEmailData) error
}
