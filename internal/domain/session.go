package domain

// Session is the client-held credential set. The in-memory copy is
// authoritative for rendering; the persisted copy carries it across restarts
// until server verification completes.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user,omitempty"`
}

func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.User == nil
}
