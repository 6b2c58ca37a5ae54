package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"suratlocal/internal/models"
)

func setupReviewTestDB(t *testing.T) (*DB, uuid.UUID, *models.Listing, func()) {
	t.Helper()
	db, cleanup := setupTestDB(t)

	ctx := context.Background()
	areaID, categoryID := createTestRefs(t, db)

	profile := &models.Profile{
		Sub:      "reviewer",
		Email:    "reviewer@example.com",
		FullName: "Meera Desai",
	}
	if err := db.UpsertProfile(ctx, profile); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	listing := &models.Listing{
		Name: "Chai Corner", Slug: "chai-corner", Address: "Ring Road",
		AreaID: areaID, CategoryID: categoryID,
	}
	if err := db.CreateListing(ctx, listing); err != nil {
		t.Fatalf("CreateListing() error = %v", err)
	}

	return db, profile.ID, listing, cleanup
}

func TestCreateReview(t *testing.T) {
	db, userID, listing, cleanup := setupReviewTestDB(t)
	defer cleanup()

	ctx := context.Background()

	review := &models.Review{
		ListingID: listing.ID,
		UserID:    userID,
		Rating:    4,
		Comment:   "Great chai",
	}
	if err := db.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}
	if review.ID == uuid.Nil {
		t.Error("CreateReview() did not set ID")
	}

	// The listing's aggregate reflects the review
	got, err := db.GetListingBySlug(ctx, listing.Slug)
	if err != nil {
		t.Fatalf("GetListingBySlug() error = %v", err)
	}
	if got.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", got.ReviewCount)
	}
	if got.AvgRating != 4 {
		t.Errorf("avg rating = %v, want 4", got.AvgRating)
	}
}

func TestCreateReview_OnePerUser(t *testing.T) {
	db, userID, listing, cleanup := setupReviewTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := &models.Review{ListingID: listing.ID, UserID: userID, Rating: 5}
	if err := db.CreateReview(ctx, first); err != nil {
		t.Fatalf("CreateReview() first error = %v", err)
	}

	second := &models.Review{ListingID: listing.ID, UserID: userID, Rating: 1}
	if err := db.CreateReview(ctx, second); !errors.Is(err, ErrDuplicateReview) {
		t.Errorf("CreateReview() second error = %v, want ErrDuplicateReview", err)
	}
}

func TestDeleteReview_OwnerOnly(t *testing.T) {
	db, userID, listing, cleanup := setupReviewTestDB(t)
	defer cleanup()

	ctx := context.Background()

	review := &models.Review{ListingID: listing.ID, UserID: userID, Rating: 3}
	if err := db.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	// A different user cannot delete it
	if err := db.DeleteReview(ctx, review.ID, uuid.New()); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("DeleteReview() foreign error = %v, want ErrReviewNotFound", err)
	}

	if err := db.DeleteReview(ctx, review.ID, userID); err != nil {
		t.Fatalf("DeleteReview() owner error = %v", err)
	}
}

func TestFavorites(t *testing.T) {
	db, userID, listing, cleanup := setupReviewTestDB(t)
	defer cleanup()

	ctx := context.Background()

	favorited, err := db.IsFavorited(ctx, userID, listing.ID)
	if err != nil {
		t.Fatalf("IsFavorited() error = %v", err)
	}
	if favorited {
		t.Error("IsFavorited() = true before AddFavorite")
	}

	if err := db.AddFavorite(ctx, userID, listing.ID); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	// Adding twice is a no-op
	if err := db.AddFavorite(ctx, userID, listing.ID); err != nil {
		t.Fatalf("AddFavorite() repeat error = %v", err)
	}

	favorited, err = db.IsFavorited(ctx, userID, listing.ID)
	if err != nil {
		t.Fatalf("IsFavorited() error = %v", err)
	}
	if !favorited {
		t.Error("IsFavorited() = false after AddFavorite")
	}

	favorites, err := db.GetFavoriteListings(ctx, userID)
	if err != nil {
		t.Fatalf("GetFavoriteListings() error = %v", err)
	}
	if len(favorites) != 1 || favorites[0].Slug != listing.Slug {
		t.Errorf("GetFavoriteListings() = %v, want one entry %q", favorites, listing.Slug)
	}

	if err := db.RemoveFavorite(ctx, userID, listing.ID); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	favorited, err = db.IsFavorited(ctx, userID, listing.ID)
	if err != nil {
		t.Fatalf("IsFavorited() error = %v", err)
	}
	if favorited {
		t.Error("IsFavorited() = true after RemoveFavorite")
	}
}

func TestUpsertProfile_PreservesRole(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	profile := &models.Profile{Sub: "admin-sub", Email: "admin@example.com"}
	if err := db.UpsertProfile(ctx, profile); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
	if profile.Role != models.RoleUser {
		t.Errorf("new profile role = %q, want %q", profile.Role, models.RoleUser)
	}

	if err := db.UpdateProfileRole(ctx, profile.ID, models.RoleAdmin); err != nil {
		t.Fatalf("UpdateProfileRole() error = %v", err)
	}

	// A later login must not demote the admin
	again := &models.Profile{Sub: "admin-sub", Email: "admin@new.example.com"}
	if err := db.UpsertProfile(ctx, again); err != nil {
		t.Fatalf("UpsertProfile() second error = %v", err)
	}
	if again.Role != models.RoleAdmin {
		t.Errorf("role after re-login = %q, want %q", again.Role, models.RoleAdmin)
	}
	if again.Email != "admin@new.example.com" {
		t.Errorf("email after re-login = %q, want updated", again.Email)
	}
}
