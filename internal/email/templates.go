package email

import (
	"fmt"
	"html"
	"strings"

	"suratlocal/internal/config"
	"suratlocal/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #ea580c; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .button { display: inline-block; background: #ea580c; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .value { color: #6b7280; }
        .success { color: #059669; }
        .error { color: #dc2626; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// SubmissionReceived notifies admins that a new listing submission needs review.
func (t *Templates) SubmissionReceived(s *models.Submission) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New listing submission: %s", t.cfg.SiteTitle, s.Name)

	content := fmt.Sprintf(`
        <p>A new business listing has been submitted and is waiting for review.</p>
        <div class="info-box">
            <p><span class="label">Name:</span> <span class="value">%s</span></p>
            <p><span class="label">Address:</span> <span class="value">%s</span></p>
            <p><span class="label">Submitted by:</span> <span class="value">%s</span></p>
        </div>
        <a href="%s/admin/moderation" class="button">Review submission</a>`,
		html.EscapeString(s.Name), html.EscapeString(s.Address), html.EscapeString(s.SubmitterName), t.cfg.BaseURL)
	htmlBody = t.baseHTML("New submission", content)

	var text strings.Builder
	text.WriteString("A new business listing has been submitted and is waiting for review.\n\n")
	text.WriteString(fmt.Sprintf("Name: %s\nAddress: %s\nSubmitted by: %s\n\n", s.Name, s.Address, s.SubmitterName))
	text.WriteString(fmt.Sprintf("Review: %s/admin/moderation\n", t.cfg.BaseURL))
	textBody = text.String()

	return subject, htmlBody, textBody
}

// SubmissionApproved notifies a submitter that their listing went live.
func (t *Templates) SubmissionApproved(s *models.Submission, listing *models.Listing) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your listing %q is now live", t.cfg.SiteTitle, s.Name)

	listingURL := fmt.Sprintf("%s/listings/%s", t.cfg.BaseURL, listing.Slug)
	content := fmt.Sprintf(`
        <p class="success">Good news! Your listing <strong>%s</strong> was approved and is now visible to everyone.</p>
        <a href="%s" class="button">View your listing</a>`,
		html.EscapeString(s.Name), listingURL)
	htmlBody = t.baseHTML("Listing approved", content)

	textBody = fmt.Sprintf("Good news! Your listing %q was approved and is now live.\n\nView it: %s\n", s.Name, listingURL)
	return subject, htmlBody, textBody
}

// SubmissionRejected notifies a submitter that their listing was declined.
func (t *Templates) SubmissionRejected(s *models.Submission) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your listing %q was not approved", t.cfg.SiteTitle, s.Name)

	content := fmt.Sprintf(`
        <p class="error">Unfortunately your listing <strong>%s</strong> was not approved.</p>
        <p>You are welcome to review the details and submit it again.</p>
        <a href="%s/submit" class="button">Submit again</a>`,
		html.EscapeString(s.Name), t.cfg.BaseURL)
	htmlBody = t.baseHTML("Listing not approved", content)

	textBody = fmt.Sprintf("Unfortunately your listing %q was not approved.\n\nYou are welcome to review the details and submit it again: %s/submit\n", s.Name, t.cfg.BaseURL)
	return subject, htmlBody, textBody
}

// EditApproved notifies a proposer that their suggested edit was applied.
func (t *Templates) EditApproved(e *models.SuggestedEdit) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your edit to %q was applied", t.cfg.SiteTitle, e.ListingName)

	listingURL := fmt.Sprintf("%s/listings/%s", t.cfg.BaseURL, e.ListingSlug)
	content := fmt.Sprintf(`
        <p class="success">Your suggested edit to <strong>%s</strong> was approved and the listing has been updated.</p>
        <a href="%s" class="button">View the listing</a>`,
		html.EscapeString(e.ListingName), listingURL)
	htmlBody = t.baseHTML("Edit applied", content)

	textBody = fmt.Sprintf("Your suggested edit to %q was approved and the listing has been updated.\n\nView it: %s\n", e.ListingName, listingURL)
	return subject, htmlBody, textBody
}

// EditRejected notifies a proposer that their suggested edit was declined.
func (t *Templates) EditRejected(e *models.SuggestedEdit) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Your edit to %q was not applied", t.cfg.SiteTitle, e.ListingName)

	listingURL := fmt.Sprintf("%s/listings/%s", t.cfg.BaseURL, e.ListingSlug)
	content := fmt.Sprintf(`
        <p class="error">Your suggested edit to <strong>%s</strong> was not applied.</p>
        <a href="%s" class="button">View the listing</a>`,
		html.EscapeString(e.ListingName), listingURL)
	htmlBody = t.baseHTML("Edit not applied", content)

	textBody = fmt.Sprintf("Your suggested edit to %q was not applied.\n\nView the listing: %s\n", e.ListingName, listingURL)
	return subject, htmlBody, textBody
}
