package service

import "errors"

// Domain errors shared across services. Handlers map these with errors.Is:
// validation errors to 400, blocked/forbidden to 403, not-found to 404 and
// conflicts to 409. Anything else is a store failure and surfaces as 500.
var (
	ErrInvalidPlate     = errors.New("invalid license plate")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidVoteType  = errors.New("invalid vote type")
	ErrEmptyComment     = errors.New("comment cannot be empty")
	ErrInvalidIncident  = errors.New("invalid incident")
	ErrVehicleBlocked   = errors.New("vehicle is blocked")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrAlreadyReported  = errors.New("comment already reported")
	ErrAlreadyFavorite  = errors.New("vehicle already in favorites")
	ErrFavoriteNotFound = errors.New("vehicle not in favorites")
	ErrNotCommentOwner  = errors.New("comment not found or not owned by user")
)
