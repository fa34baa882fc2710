package outbound

// Session-eviction reason codes carried on the login redirect so the login
// surface can show a contextual prompt.
const (
	ReasonExpired         = "expired"
	ReasonLogout          = "logout"
	ReasonUnauthenticated = "unauthenticated"
)

// Navigator is the navigation capability injected into the auth-failure
// path. Abstracting it keeps the eviction logic testable without a real
// navigation surface.
type Navigator interface {
	// CurrentPath returns the path the user is currently on.
	CurrentPath() string

	// RedirectToLogin sends the user to the login surface, carrying the
	// originating path and a reason code so they can be returned afterward.
	// Implementations must tolerate being asked while already at login.
	RedirectToLogin(from, reason string)
}
