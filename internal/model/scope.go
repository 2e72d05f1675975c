package model

// Scope identifies the caller of a usecase.
type Scope struct {
	UserID string
}

// ScopeOrDefault returns s, falling back to DefaultUserID when no user is set.
func ScopeOrDefault(s Scope) Scope {
	if s.UserID == "" {
		s.UserID = DefaultUserID
	}
	return s
}
