package models

// User is the DB representation of an application user.
type User struct {
	UserID           string `db:"user_id"`
	Name             string `db:"name"`
	Email            string `db:"email"`
	PasswordHash     string `db:"password_hash"`
	AuthProvider     string `db:"auth_provider"`
	ProviderUserID   string `db:"provider_user_id"`
	EmailVerified    bool   `db:"email_verified"`
	RefreshTokenHash string `db:"refresh_token_hash"`
	IsDeleted        bool   `db:"is_deleted"`
	AuditFields
}
