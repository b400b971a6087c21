package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	TouchLastLogin(ctx context.Context, id uint) error
	AddMedia(ctx context.Context, item *MediaItem) error
	ListMedia(ctx context.Context, userID uint) ([]MediaItem, error)
}

// MatchRepository defines match data access operations. AddParticipant and
// RemoveParticipant must be atomic: capacity and uniqueness checks may not be
// separate read-then-write steps.
type MatchRepository interface {
	Create(ctx context.Context, match *Match) error
	FindByID(ctx context.Context, id uint) (*Match, error)
	List(ctx context.Context, filter MatchFilter) ([]Match, error)
	ListByUser(ctx context.Context, userID uint) ([]Match, error)
	ListJoined(ctx context.Context, userID uint) ([]Match, error)
	Update(ctx context.Context, id uint, update MatchUpdate) (*Match, error)
	Delete(ctx context.Context, id uint) error
	AddParticipant(ctx context.Context, matchID, userID uint) error
	RemoveParticipant(ctx context.Context, matchID, userID uint) error
}

// TeamRepository defines team data access operations. The mutating calls are
// atomic conditional writes so the member/request disjointness invariant
// holds under concurrent requests.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, id uint) (*Team, error)
	FindByMember(ctx context.Context, userID uint) (*Team, error)
	AddJoinRequest(ctx context.Context, teamID, userID uint) error
	ApproveJoinRequest(ctx context.Context, teamID, userID uint) error
	RemoveJoinRequest(ctx context.Context, teamID, userID uint) error
	RemoveMember(ctx context.Context, teamID, userID uint) error
}

// ResetCodeStore persists one-time password reset codes. Put replaces any
// existing code for the email in a single write; Consume deletes the code
// atomically with the comparison so it is single-use.
type ResetCodeStore interface {
	Put(ctx context.Context, email, code string) error
	Consume(ctx context.Context, email, code string) error
}

// AuthService defines registration and login business logic
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// RegisterInput carries the registration form fields. ProfileImage is
// optional.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Mobile       string
	DOB          string
	Location     string
	ProfileImage *FileUpload
}

// PasswordResetService defines the one-time-code recovery flow
type PasswordResetService interface {
	RequestCode(ctx context.Context, email string) (delivered bool, err error)
	RedeemCode(ctx context.Context, email, code, newPassword string) error
}

// MatchService defines match registry operations
type MatchService interface {
	Create(ctx context.Context, actorID uint, input CreateMatchInput) (*Match, error)
	Get(ctx context.Context, id uint) (*Match, error)
	List(ctx context.Context, filter MatchFilter) ([]Match, error)
	ListMine(ctx context.Context, actorID uint) ([]Match, error)
	ListJoined(ctx context.Context, actorID uint) ([]Match, error)
	Update(ctx context.Context, actorID, id uint, input UpdateMatchInput) (*Match, error)
	Delete(ctx context.Context, actorID, id uint) error
}

// UpdateMatchInput carries optional match fields as submitted; nil fields are
// left untouched. Date is parsed and re-validated by the service.
type UpdateMatchInput struct {
	Title       *string
	GameType    *string
	Date        *string
	Location    *string
	MaxPlayers  *int
	Description *string
}

// CreateMatchInput carries the create-match form fields.
type CreateMatchInput struct {
	Title       string
	GameType    string
	Date        string
	Location    string
	MaxPlayers  int
	Description string
}

// MembershipService defines join/leave operations on a match's participant set
type MembershipService interface {
	Join(ctx context.Context, actorID, matchID uint) (*Match, error)
	Leave(ctx context.Context, actorID, matchID uint) (*Match, error)
	Participants(ctx context.Context, matchID uint) ([]PublicUser, error)
	RemoveParticipant(ctx context.Context, actorID, matchID, targetID uint) error
}

// TeamService defines team registry operations
type TeamService interface {
	Create(ctx context.Context, actorID uint, name, description string) (*Team, error)
	Get(ctx context.Context, id uint) (*Team, error)
	RequestJoin(ctx context.Context, actorID, teamID uint) (*Team, error)
	ApproveRequest(ctx context.Context, actorID, teamID, targetID uint) (*Team, error)
	RejectRequest(ctx context.Context, actorID, teamID, targetID uint) (*Team, error)
	RemoveMember(ctx context.Context, actorID, teamID, targetID uint) (*Team, error)
	Leave(ctx context.Context, actorID uint) (*Team, error)
}

// UserService defines profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*Profile, error)
}

// UpdateProfileInput carries optional profile fields as submitted; nil fields
// are left untouched.
type UpdateProfileInput struct {
	Name         *string
	DOB          *string
	Mobile       *string
	Location     *string
	ProfileImage *string
}

// MediaService defines profile media attachment operations
type MediaService interface {
	Attach(ctx context.Context, actorID uint, kind string, file *FileUpload) ([]MediaItem, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// MailerService defines outbound email operations
type MailerService interface {
	SendResetCode(to, code string) error
}

// MediaStorage defines the external object storage collaborator. Upload
// returns a durable public URL for the stored object.
type MediaStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
