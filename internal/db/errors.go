package db

import "errors"

// Domain-level database error sentinels.
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrDuplicateSlug   = errors.New("slug already exists")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Area/category errors
	ErrAreaNotFound     = errors.New("area not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAreaInUse        = errors.New("area still has listings")
	ErrCategoryInUse    = errors.New("category still has listings")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this listing")

	// Moderation errors. Not-found doubles as "already decided": a terminal
	// submission or edit is invisible to the decide operations.
	ErrSubmissionNotFound = errors.New("submission not found or already processed")
	ErrEditNotFound       = errors.New("suggested edit not found or already processed")

	// ErrInvalidReference maps foreign-key violations on area/category
	// references supplied by user forms.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
