package email

import (
	"context"
	"log"

	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/models"
)

// AdminEmailGetter is an interface for looking up notification recipients.
type AdminEmailGetter interface {
	GetAdminEmails(ctx context.Context) ([]string, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// Notifier sends email notifications for moderation events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	db        AdminEmailGetter
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, db AdminEmailGetter) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		db:        db,
	}
}

// NotifySubmissionReceived notifies admins that a new submission needs review.
func (n *Notifier) NotifySubmissionReceived(ctx context.Context, s *models.Submission) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyAdminsOnSubmit {
		return
	}

	emails, err := n.db.GetAdminEmails(ctx)
	if err != nil {
		log.Printf("Failed to get admin emails: %v", err)
		return
	}
	if len(emails) == 0 {
		log.Println("No admin emails found for notification")
		return
	}

	subject, htmlBody, textBody := n.templates.SubmissionReceived(s)
	n.service.SendAsync(emails, subject, htmlBody, textBody)
}

// NotifySubmissionApproved notifies the submitter that their listing went live.
func (n *Notifier) NotifySubmissionApproved(ctx context.Context, s *models.Submission, listing *models.Listing) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyUserOnDecision {
		return
	}

	email := n.submitterEmail(ctx, s)
	if email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SubmissionApproved(s, listing)
	n.service.SendAsync([]string{email}, subject, htmlBody, textBody)
}

// NotifySubmissionRejected notifies the submitter that their listing was declined.
func (n *Notifier) NotifySubmissionRejected(ctx context.Context, s *models.Submission) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyUserOnDecision {
		return
	}

	email := n.submitterEmail(ctx, s)
	if email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SubmissionRejected(s)
	n.service.SendAsync([]string{email}, subject, htmlBody, textBody)
}

// NotifyEditApproved notifies the proposer that their edit was applied.
func (n *Notifier) NotifyEditApproved(ctx context.Context, e *models.SuggestedEdit) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyUserOnDecision {
		return
	}

	email := n.proposerEmail(ctx, e)
	if email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.EditApproved(e)
	n.service.SendAsync([]string{email}, subject, htmlBody, textBody)
}

// NotifyEditRejected notifies the proposer that their edit was declined.
func (n *Notifier) NotifyEditRejected(ctx context.Context, e *models.SuggestedEdit) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyUserOnDecision {
		return
	}

	email := n.proposerEmail(ctx, e)
	if email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.EditRejected(e)
	n.service.SendAsync([]string{email}, subject, htmlBody, textBody)
}

func (n *Notifier) submitterEmail(ctx context.Context, s *models.Submission) string {
	if s.SubmitterEmail != "" {
		return s.SubmitterEmail
	}
	profile, err := n.db.GetProfileByID(ctx, s.UserID)
	if err != nil {
		log.Printf("Failed to get submitter profile: %v", err)
		return ""
	}
	return profile.Email
}

func (n *Notifier) proposerEmail(ctx context.Context, e *models.SuggestedEdit) string {
	if e.ProposerEmail != "" {
		return e.ProposerEmail
	}
	profile, err := n.db.GetProfileByID(ctx, e.UserID)
	if err != nil {
		log.Printf("Failed to get proposer profile: %v", err)
		return ""
	}
	return profile.Email
}
