package accounts

// Account is a registered identity as stored in the account directory.
// Timestamps are ISO 8601 strings, matching the persisted blob layout.
type Account struct {
	ID           string `json:"id"`                      // Generated at sign-up; secondary key
	Email        string `json:"email"`                   // Natural key of the directory, case-sensitive
	FullName     string `json:"full_name"`               // Optional display name
	AvatarURL    string `json:"avatar_url,omitempty"`    // Optional avatar reference
	IsPremium    bool   `json:"is_premium"`              // Premium entitlement flag
	CreatedAt    string `json:"created_at"`              //
	UpdatedAt    string `json:"updated_at"`              //
	PasswordHash string `json:"password_hash,omitempty"` // Encoded credential - never present on session records
}

// Redacted returns a copy of the account with the credential stripped.
// This is the shape persisted as the session record and exposed to callers.
func (a Account) Redacted() Account {
	a.PasswordHash = ""
	return a
}

// directory is the persisted collection of all accounts, keyed by email.
type directory map[string]Account

// Session carries the opaque access token returned by sign-up and sign-in.
type Session struct {
	AccessToken string `json:"access_token"`
}

// AuthResult is the response shape of SignUp and SignIn: the credential-
// stripped account plus an access token.
type AuthResult struct {
	User    Account `json:"user"`
	Session Session `json:"session"`
}

// ProfileUpdate holds the partial fields UpdateProfile merges into the
// current session and directory entry. Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsPremium *bool   `json:"is_premium,omitempty"`
}

// AccountSummary is the per-account line of the Stats report.
type AccountSummary struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// Stats summarises the account directory.
type Stats struct {
	TotalAccounts int              `json:"total_accounts"`
	Accounts      []AccountSummary `json:"accounts"`
}
