package model

// User represents an account in the system. Accounts are created on first
// login with an unknown email and are never deleted; profile fields are
// merged in place by partial updates.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar,omitempty"`
	Institution string `json:"institution,omitempty"`
	Major       string `json:"major,omitempty"`
	Semester    string `json:"semester,omitempty"`
}

// UserUpdate carries the fields of a partial profile update. Nil fields
// keep the stored value; set fields win last-write.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Major       *string `json:"major,omitempty"`
	Semester    *string `json:"semester,omitempty"`
}
