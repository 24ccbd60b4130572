package entity

// Identity is the part of an admin, employee or user row that
// authentication and credential rotation need.
type Identity struct {
	Base
	FullName     string  `db:"full_name"`
	Email        string  `db:"email"`
	PhoneNumber  *string `db:"phone_number"`
	PasswordHash string  `db:"password"`
	Role         Role    `db:"role"`
}

// User is an end-user row.
type User struct {
	Identity
	Identifier     string  `db:"identifier"`
	CreditsLeft    int     `db:"credits_left"`
	MyReferralCode string  `db:"my_referral_code"`
	Address        *string `db:"address"`
	ProfilePic     *string `db:"profile_pic"`
}
