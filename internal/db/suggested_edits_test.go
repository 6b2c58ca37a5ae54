package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"suratlocal/internal/models"
)

func setupEditTestDB(t *testing.T) (*DB, uuid.UUID, *models.Listing, func()) {
	t.Helper()
	db, cleanup := setupTestDB(t)

	ctx := context.Background()
	areaID, categoryID := createTestRefs(t, db)

	profile := &models.Profile{
		Sub:      "proposer",
		Email:    "proposer@example.com",
		FullName: "Ravi Shah",
	}
	if err := db.UpsertProfile(ctx, profile); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	listing := &models.Listing{
		Name:        "Surat Sweets",
		Slug:        "surat-sweets",
		Description: "Old description",
		Address:     "Varachha Road",
		Phone:       "0261-1111111",
		AreaID:      areaID,
		CategoryID:  categoryID,
	}
	if err := db.CreateListing(ctx, listing); err != nil {
		t.Fatalf("CreateListing() error = %v", err)
	}

	return db, profile.ID, listing, cleanup
}

func TestCreateSuggestedEdit(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    userID,
		Changes: map[string]string{
			"phone": "0261-2222222",
			"hours": "10am-8pm",
		},
		Reason: "Phone number changed",
	}

	if err := db.CreateSuggestedEdit(ctx, edit); err != nil {
		t.Fatalf("CreateSuggestedEdit() error = %v", err)
	}
	if edit.ID == uuid.Nil {
		t.Error("CreateSuggestedEdit() did not set ID")
	}
	if edit.Status != models.StatusPending {
		t.Errorf("CreateSuggestedEdit() status = %q, want %q", edit.Status, models.StatusPending)
	}
}

func TestCreateSuggestedEdit_FiltersUnknownKeys(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    userID,
		Changes: map[string]string{
			"phone":       "0261-3333333",
			"slug":        "hacked",
			"is_verified": "true",
		},
	}

	if err := db.CreateSuggestedEdit(ctx, edit); err != nil {
		t.Fatalf("CreateSuggestedEdit() error = %v", err)
	}

	got, err := db.GetSuggestedEditByID(ctx, edit.ID)
	if err != nil {
		t.Fatalf("GetSuggestedEditByID() error = %v", err)
	}
	if len(got.Changes) != 1 {
		t.Errorf("stored changes = %v, want only phone", got.Changes)
	}
	if got.Changes["phone"] != "0261-3333333" {
		t.Errorf("stored phone = %q, want %q", got.Changes["phone"], "0261-3333333")
	}
}

func TestCreateSuggestedEdit_EmptyAfterFilter(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    userID,
		Changes: map[string]string{
			"slug":    "hacked",
			"area_id": "whatever",
		},
	}

	if err := db.CreateSuggestedEdit(ctx, edit); !errors.Is(err, ErrEmptyChanges) {
		t.Errorf("CreateSuggestedEdit() error = %v, want ErrEmptyChanges", err)
	}
}

func TestCreateSuggestedEdit_MissingListing(t *testing.T) {
	db, userID, _, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: uuid.New(),
		UserID:    userID,
		Changes:   map[string]string{"phone": "0261-4444444"},
	}

	if err := db.CreateSuggestedEdit(ctx, edit); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("CreateSuggestedEdit() error = %v, want ErrListingNotFound", err)
	}
}

func TestApproveSuggestedEdit(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    userID,
		Changes: map[string]string{
			"phone":       "0261-5555555",
			"description": "New description",
		},
	}
	if err := db.CreateSuggestedEdit(ctx, edit); err != nil {
		t.Fatalf("CreateSuggestedEdit() error = %v", err)
	}

	if err := db.ApproveSuggestedEdit(ctx, edit.ID, userID); err != nil {
		t.Fatalf("ApproveSuggestedEdit() error = %v", err)
	}

	// Changed fields applied, untouched fields preserved
	got, err := db.GetListingByID(ctx, listing.ID)
	if err != nil {
		t.Fatalf("GetListingByID() error = %v", err)
	}
	if got.Phone != "0261-5555555" {
		t.Errorf("listing phone = %q, want %q", got.Phone, "0261-5555555")
	}
	if got.Description != "New description" {
		t.Errorf("listing description = %q, want %q", got.Description, "New description")
	}
	if got.Name != "Surat Sweets" {
		t.Errorf("listing name = %q, want unchanged %q", got.Name, "Surat Sweets")
	}
	if got.Address != "Varachha Road" {
		t.Errorf("listing address = %q, want unchanged %q", got.Address, "Varachha Road")
	}

	// Edit is now decided
	decided, err := db.GetSuggestedEditByID(ctx, edit.ID)
	if err != nil {
		t.Fatalf("GetSuggestedEditByID() error = %v", err)
	}
	if decided.Status != models.StatusApproved {
		t.Errorf("edit status = %q, want %q", decided.Status, models.StatusApproved)
	}
	if decided.ReviewedBy == nil || *decided.ReviewedBy != userID {
		t.Error("edit reviewed_by not set to the reviewer")
	}
}

func TestApproveSuggestedEdit_AlreadyDecided(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    userID,
		Changes:   map[string]string{"phone": "0261-6666666"},
	}
	if err := db.CreateSuggestedEdit(ctx, edit); err != nil {
		t.Fatalf("CreateSuggestedEdit() error = %v", err)
	}

	if err := db.RejectSuggestedEdit(ctx, edit.ID, userID); err != nil {
		t.Fatalf("RejectSuggestedEdit() error = %v", err)
	}

	// A rejected edit cannot later be approved, and the listing stays as-is
	if err := db.ApproveSuggestedEdit(ctx, edit.ID, userID); !errors.Is(err, ErrEditNotFound) {
		t.Errorf("ApproveSuggestedEdit() error = %v, want ErrEditNotFound", err)
	}

	got, err := db.GetListingByID(ctx, listing.ID)
	if err != nil {
		t.Fatalf("GetListingByID() error = %v", err)
	}
	if got.Phone != "0261-1111111" {
		t.Errorf("listing phone = %q, want unchanged %q", got.Phone, "0261-1111111")
	}
}

func TestGetPendingSuggestedEdits(t *testing.T) {
	db, userID, listing, cleanup := setupEditTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for _, phone := range []string{"0261-7777777", "0261-8888888"} {
		edit := &models.SuggestedEdit{
			ListingID: listing.ID,
			UserID:    userID,
			Changes:   map[string]string{"phone": phone},
		}
		if err := db.CreateSuggestedEdit(ctx, edit); err != nil {
			t.Fatalf("CreateSuggestedEdit() error = %v", err)
		}
	}

	pending, err := db.GetPendingSuggestedEdits(ctx)
	if err != nil {
		t.Fatalf("GetPendingSuggestedEdits() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("GetPendingSuggestedEdits() = %d, want 2", len(pending))
	}
	if pending[0].Changes["phone"] != "0261-8888888" {
		t.Errorf("newest-first order broken: first item phone = %q", pending[0].Changes["phone"])
	}
	if pending[0].ListingName != "Surat Sweets" {
		t.Errorf("listing name join = %q, want %q", pending[0].ListingName, "Surat Sweets")
	}
	if pending[0].ProposerName != "Ravi Shah" {
		t.Errorf("proposer name join = %q, want %q", pending[0].ProposerName, "Ravi Shah")
	}
}
