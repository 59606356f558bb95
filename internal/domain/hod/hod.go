// Package hod defines the authenticated department-head identity and the
// console session derived from it.
package hod

// HOD identifies the authenticated department head.
type HOD struct {
	id   string
	name string
}

// NewHOD creates an identity record.
func NewHOD(id, name string) HOD { return HOD{id: id, name: name} }

// ID returns the HOD identifier.
func (h HOD) ID() string { return h.id }

// Name returns the HOD display name.
func (h HOD) Name() string { return h.name }

// Session is a console session: the HOD identity plus the backend bearer
// token the gateway forwards on their behalf.
type Session struct {
	hod          HOD
	backendToken string
}

// NewSession creates a session for an authenticated HOD.
func NewSession(h HOD, backendToken string) Session {
	return Session{hod: h, backendToken: backendToken}
}

// HOD returns the session owner.
func (s Session) HOD() HOD { return s.hod }

// BackendToken returns the backend bearer token.
func (s Session) BackendToken() string { return s.backendToken }
