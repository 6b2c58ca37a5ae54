package email

import (
	"strings"
	"testing"

	"suratlocal/internal/config"
	"suratlocal/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		SiteTitle: "Surat Local",
		BaseURL:   "http://localhost:3000",
	}
}

func TestSubmissionReceived(t *testing.T) {
	tmpl := NewTemplates(testConfig())
	s := &models.Submission{
		Name:          "Chai Corner",
		Address:       "Ring Road, Surat",
		SubmitterName: "Asha Patel",
	}

	subject, htmlBody, textBody := tmpl.SubmissionReceived(s)

	if !strings.Contains(subject, "Chai Corner") {
		t.Errorf("subject %q missing listing name", subject)
	}
	if !strings.Contains(htmlBody, "Asha Patel") {
		t.Error("html body missing submitter name")
	}
	if !strings.Contains(htmlBody, "/admin/moderation") {
		t.Error("html body missing moderation link")
	}
	if !strings.Contains(textBody, "Chai Corner") {
		t.Error("text body missing listing name")
	}
}

func TestSubmissionReceivedEscapesHTML(t *testing.T) {
	tmpl := NewTemplates(testConfig())
	s := &models.Submission{
		Name:          `<script>alert(1)</script>`,
		Address:       "Somewhere",
		SubmitterName: "X",
	}

	_, htmlBody, _ := tmpl.SubmissionReceived(s)

	if strings.Contains(htmlBody, "<script>alert(1)</script>") {
		t.Error("html body contains unescaped markup")
	}
	if !strings.Contains(htmlBody, "&lt;script&gt;") {
		t.Error("html body missing escaped markup")
	}
}

func TestSubmissionApproved(t *testing.T) {
	tmpl := NewTemplates(testConfig())
	s := &models.Submission{Name: "Chai Corner"}
	listing := &models.Listing{Slug: "chai-corner-1700000000000"}

	subject, htmlBody, textBody := tmpl.SubmissionApproved(s, listing)

	if !strings.Contains(subject, "Chai Corner") {
		t.Errorf("subject %q missing listing name", subject)
	}
	wantURL := "http://localhost:3000/listings/chai-corner-1700000000000"
	if !strings.Contains(htmlBody, wantURL) {
		t.Errorf("html body missing listing URL %q", wantURL)
	}
	if !strings.Contains(textBody, wantURL) {
		t.Errorf("text body missing listing URL %q", wantURL)
	}
}

func TestEditDecisionTemplates(t *testing.T) {
	tmpl := NewTemplates(testConfig())
	e := &models.SuggestedEdit{
		ListingName: "Surat Sweets",
		ListingSlug: "surat-sweets-1700000000000",
	}

	subject, htmlBody, _ := tmpl.EditApproved(e)
	if !strings.Contains(subject, "Surat Sweets") {
		t.Errorf("approved subject %q missing listing name", subject)
	}
	if !strings.Contains(htmlBody, "surat-sweets-1700000000000") {
		t.Error("approved html body missing listing slug")
	}

	subject, _, textBody := tmpl.EditRejected(e)
	if !strings.Contains(subject, "Surat Sweets") {
		t.Errorf("rejected subject %q missing listing name", subject)
	}
	if !strings.Contains(textBody, "not applied") {
		t.Error("rejected text body missing decision wording")
	}
}
