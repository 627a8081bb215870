package errors

import "net/http"

var (
	ErrFloatNotFound = New(
		"FLOAT_NOT_FOUND",
		"No data found for the requested float",
		http.StatusNotFound,
	)

	ErrDestinationNotFound = New(
		"DESTINATION_NOT_FOUND",
		"Destination port not found in the port catalog",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrNoFloatPosition = New(
		"NO_FLOAT_POSITION",
		"Float has no valid latitude/longitude",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyHistory = New(
		"EMPTY_HISTORY",
		"Chat history has nothing to share yet",
		http.StatusBadRequest,
	)

	ErrHistoryNotFound = New(
		"HISTORY_NOT_FOUND",
		"Shared history not found or expired",
		http.StatusNotFound,
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
