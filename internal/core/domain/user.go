package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an application user. PasswordHash is empty for OAuth users.
type User struct {
	UserID           string       `json:"userID"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	PasswordHash     string       `json:"-"`
	AuthProvider     AuthProvider `json:"authProvider"`
	ProviderUserID   string       `json:"-"` // Provider's subject claim for OAuth users
	EmailVerified    bool         `json:"emailVerified"`
	RefreshTokenHash string       `json:"-"`
	IsDeleted        bool         `json:"-"`
	AuditFields
}
