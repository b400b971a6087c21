package domain

import "time"

// Match lifecycle states. Matches are created as upcoming; no exposed
// operation advances them automatically.
const (
	MatchUpcoming  = "upcoming"
	MatchCompleted = "completed"
	MatchCancelled = "cancelled"
)

// Media attachment kinds.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string `json:"-"`
	Mobile       string
	DOB          time.Time
	Location     string
	ProfileImage string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the display-safe view used when resolving participant and
// member references.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is the redacted identity view returned by auth and profile
// endpoints. It never carries the password hash.
type Profile struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Mobile       string     `json:"mobile"`
	DOB          time.Time  `json:"dob"`
	Location     string     `json:"location"`
	ProfileImage string     `json:"profileImage"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Public returns the participant-resolution view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Profile returns the redacted identity view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Mobile:       u.Mobile,
		DOB:          u.DOB,
		Location:     u.Location,
		ProfileImage: u.ProfileImage,
		LastLogin:    u.LastLogin,
	}
}

// MediaItem is an uploaded attachment on a user's profile.
type MediaItem struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"-"`
	Kind       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Match is a scheduled, capacity-bounded sporting event. The creator is a
// permanent participant; |Participants| never exceeds MaxPlayers.
type Match struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	GameType     string       `json:"gameType"`
	Date         time.Time    `json:"date"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	MaxPlayers   int          `json:"maxPlayers"`
	CreatedBy    PublicUser   `json:"createdBy"`
	Participants []PublicUser `json:"participants"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// MatchFilter narrows match listings. Zero values mean no constraint.
type MatchFilter struct {
	GameType string
	Location string // case-insensitive substring
	Status   string
	DateFrom *time.Time
}

// MatchUpdate carries partial-update fields; nil pointers leave the stored
// value untouched.
type MatchUpdate struct {
	Title       *string
	GameType    *string
	Date        *time.Time
	Location    *string
	MaxPlayers  *int
	Description *string
}

// Team is a persistent group with a request/approve join workflow. A user is
// never simultaneously a member and a pending requester.
type Team struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	CreatedBy    PublicUser   `json:"createdBy"`
	Members      []PublicUser `json:"members"`
	JoinRequests []PublicUser `json:"joinRequests"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ProfileUpdate carries partial profile fields; nil pointers are skipped.
type ProfileUpdate struct {
	Name         *string
	DOB          *time.Time
	Mobile       *string
	Location     *string
	ProfileImage *string
}

// FileUpload is an inbound file handed to the media storage collaborator.
type FileUpload struct {
	ContentType string
	Size        int64
	Data        []byte
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims are the verified contents of a session token.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
