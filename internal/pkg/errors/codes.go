package errors

import "net/http"

var (
	ErrStateNotFound = New(
		"STATE_NOT_FOUND",
		"US state not found",
		http.StatusNotFound,
	)

	ErrFacilityNotFound = New(
		"FACILITY_NOT_FOUND",
		"Facility type not found",
		http.StatusNotFound,
	)

	ErrInvalidPovertyThreshold = New(
		"INVALID_POVERTY_THRESHOLD",
		"Poverty threshold must be between 0 and 100",
		http.StatusBadRequest,
	)

	ErrInvalidDistanceThreshold = New(
		"INVALID_DISTANCE_THRESHOLD",
		"Distance threshold is out of range",
		http.StatusBadRequest,
	)

	ErrInvalidSessionID = New(
		"INVALID_SESSION_ID",
		"Session ID must be a non-empty string",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
