package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"suratlocal/internal/models"
)

func setupSubmissionTestDB(t *testing.T) (*DB, uuid.UUID, uuid.UUID, uuid.UUID, func()) {
	t.Helper()
	db, cleanup := setupTestDB(t)

	ctx := context.Background()
	areaID, categoryID := createTestRefs(t, db)

	profile := &models.Profile{
		Sub:      "submitter",
		Email:    "submitter@example.com",
		FullName: "Asha Patel",
	}
	if err := db.UpsertProfile(ctx, profile); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	return db, profile.ID, areaID, categoryID, cleanup
}

func newTestSubmission(userID, areaID, categoryID uuid.UUID) *models.Submission {
	return &models.Submission{
		UserID:      userID,
		AreaID:      areaID,
		CategoryID:  categoryID,
		Name:        "Chai Corner",
		Description: "Tea stall near the river",
		Address:     "Ring Road, Surat",
		Phone:       "0261-1234567",
		Data: models.SubmissionData{
			NameHi:  "चाय कॉर्नर",
			Website: "https://chaicorner.example.com",
			Hours:   "9am-9pm",
		},
	}
}

func TestCreateSubmission(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newTestSubmission(userID, areaID, categoryID)

	if err := db.CreateSubmission(ctx, s); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	if s.ID == uuid.Nil {
		t.Error("CreateSubmission() did not set ID")
	}
	if s.Status != models.StatusPending {
		t.Errorf("CreateSubmission() status = %q, want %q", s.Status, models.StatusPending)
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreateSubmission() did not set CreatedAt")
	}
}

func TestCreateSubmission_InvalidReference(t *testing.T) {
	db, userID, _, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newTestSubmission(userID, uuid.New(), categoryID)

	if err := db.CreateSubmission(ctx, s); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("CreateSubmission() error = %v, want ErrInvalidReference", err)
	}
}

func TestCreateSubmission_AllowsRepeats(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		s := newTestSubmission(userID, areaID, categoryID)
		if err := db.CreateSubmission(ctx, s); err != nil {
			t.Fatalf("CreateSubmission() attempt %d error = %v", i+1, err)
		}
	}

	pending, err := db.GetPendingSubmissions(ctx)
	if err != nil {
		t.Fatalf("GetPendingSubmissions() error = %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("GetPendingSubmissions() = %d, want 2", len(pending))
	}
}

func TestApproveSubmission(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()
	reviewerID := userID

	s := newTestSubmission(userID, areaID, categoryID)
	s.Data.Images = []models.SubmissionImage{
		{URL: "https://img.example.com/1.jpg", IsPrimary: true},
		{URL: "https://img.example.com/2.jpg"},
	}
	if err := db.CreateSubmission(ctx, s); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	listing, err := db.ApproveSubmission(ctx, s.ID, reviewerID)
	if err != nil {
		t.Fatalf("ApproveSubmission() error = %v", err)
	}

	if listing.Name != s.Name {
		t.Errorf("listing name = %q, want %q", listing.Name, s.Name)
	}
	if listing.NameHi != s.Data.NameHi {
		t.Errorf("listing name_hi = %q, want %q", listing.NameHi, s.Data.NameHi)
	}
	if !strings.HasPrefix(listing.Slug, "chai-corner-") {
		t.Errorf("listing slug = %q, want chai-corner- prefix", listing.Slug)
	}

	// Submission is now decided
	got, err := db.GetSubmissionByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSubmissionByID() error = %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Errorf("submission status = %q, want %q", got.Status, models.StatusApproved)
	}
	if got.ReviewedBy == nil || *got.ReviewedBy != reviewerID {
		t.Error("submission reviewed_by not set to the reviewer")
	}
	if got.ReviewedAt == nil {
		t.Error("submission reviewed_at not set")
	}

	// Images were materialized
	images, err := db.GetListingImages(ctx, listing.ID)
	if err != nil {
		t.Fatalf("GetListingImages() error = %v", err)
	}
	if len(images) != 2 {
		t.Errorf("listing images = %d, want 2", len(images))
	}

	// Listing is publicly visible
	visible, err := db.GetListingBySlug(ctx, listing.Slug)
	if err != nil {
		t.Fatalf("GetListingBySlug() error = %v", err)
	}
	if visible.ImageURL != "https://img.example.com/1.jpg" {
		t.Errorf("listing image_url = %q, want primary image", visible.ImageURL)
	}
}

func TestApproveSubmission_AlreadyDecided(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()

	s := newTestSubmission(userID, areaID, categoryID)
	if err := db.CreateSubmission(ctx, s); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	if _, err := db.ApproveSubmission(ctx, s.ID, userID); err != nil {
		t.Fatalf("ApproveSubmission() first error = %v", err)
	}

	// Second approval loses: no second listing, NotFound sentinel
	if _, err := db.ApproveSubmission(ctx, s.ID, userID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("ApproveSubmission() second error = %v, want ErrSubmissionNotFound", err)
	}

	count, err := db.CountListings(ctx)
	if err != nil {
		t.Fatalf("CountListings() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountListings() = %d, want 1", count)
	}

	// Rejecting a decided submission also fails
	if err := db.RejectSubmission(ctx, s.ID, userID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("RejectSubmission() error = %v, want ErrSubmissionNotFound", err)
	}
}

func TestRejectSubmission(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()

	s := newTestSubmission(userID, areaID, categoryID)
	if err := db.CreateSubmission(ctx, s); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	if err := db.RejectSubmission(ctx, s.ID, userID); err != nil {
		t.Fatalf("RejectSubmission() error = %v", err)
	}

	got, err := db.GetSubmissionByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSubmissionByID() error = %v", err)
	}
	if got.Status != models.StatusRejected {
		t.Errorf("submission status = %q, want %q", got.Status, models.StatusRejected)
	}

	// No listing was created
	count, err := db.CountListings(ctx)
	if err != nil {
		t.Fatalf("CountListings() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountListings() = %d, want 0", count)
	}
}

func TestRejectSubmission_NotFound(t *testing.T) {
	db, _, _, _, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := db.RejectSubmission(ctx, uuid.New(), uuid.New()); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("RejectSubmission() error = %v, want ErrSubmissionNotFound", err)
	}
}

func TestGetPendingSubmissions_Order(t *testing.T) {
	db, userID, areaID, categoryID, cleanup := setupSubmissionTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := newTestSubmission(userID, areaID, categoryID)
	first.Name = "First"
	if err := db.CreateSubmission(ctx, first); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	second := newTestSubmission(userID, areaID, categoryID)
	second.Name = "Second"
	if err := db.CreateSubmission(ctx, second); err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}

	pending, err := db.GetPendingSubmissions(ctx)
	if err != nil {
		t.Fatalf("GetPendingSubmissions() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("GetPendingSubmissions() = %d, want 2", len(pending))
	}
	if pending[0].Name != "Second" {
		t.Errorf("newest-first order broken: first item = %q, want %q", pending[0].Name, "Second")
	}
	if pending[0].SubmitterName != "Asha Patel" {
		t.Errorf("submitter name = %q, want %q", pending[0].SubmitterName, "Asha Patel")
	}
	if pending[0].AreaName != "Adajan" {
		t.Errorf("area name = %q, want %q", pending[0].AreaName, "Adajan")
	}
}
