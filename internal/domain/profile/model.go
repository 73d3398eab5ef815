package profile

import "time"

// Profile maps to the profiles table. Profiles are keyed by the
// authenticated user id rather than a surrogate uuid.
type Profile struct {
	UserID      string     `db:"user_id" json:"user_id"`
	FullName    *string    `db:"full_name" json:"full_name,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	BloodType   *string    `db:"blood_type" json:"blood_type,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
