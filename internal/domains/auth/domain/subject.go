package domain

// AuthorityUser is the single fixed capability every authenticated customer
// holds; no wider roles/permissions model exists.
const AuthorityUser = "user"

// Subject is the authenticated identity bound into an issued token.
type Subject struct {
	Email       string
	Authorities []string
}

// NewSubject builds the standard subject for a customer email.
func NewSubject(email string) Subject {
	return Subject{Email: email, Authorities: []string{AuthorityUser}}
}

// Equal reports whether two subjects carry the same identity and authorities.
func (s Subject) Equal(other Subject) bool {
	if s.Email != other.Email || len(s.Authorities) != len(other.Authorities) {
		return false
	}
	for i := range s.Authorities {
		if s.Authorities[i] != other.Authorities[i] {
			return false
		}
	}
	return true
}
