package omdb

// APIError is an application-level failure reported in-band by OMDb
// (Response "False"), such as "Movie not found!" or "Too many results.".
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "omdb: " + e.Message
}

// ErrNoAPIKey is returned without contacting OMDb when no key is configured.
// The message matches what OMDb itself answers for a missing key.
var ErrNoAPIKey = &APIError{Message: "No API key provided."}
