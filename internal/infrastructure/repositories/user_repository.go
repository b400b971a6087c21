package repositories

import (
	"context"
	"time"

	"github.com/you/playconnect/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:64"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:password"`
	Mobile       string `gorm:"size:32"`
	DOB          time.Time
	Location     string `gorm:"size:128"`
	ProfileImage string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// DBMediaItem represents an uploaded media attachment row.
type DBMediaItem struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index"`
	Kind       string `gorm:"size:16"`
	URL        string
	UploadedAt time.Time
}

// TableName returns the table name for GORM
func (DBMediaItem) TableName() string {
	return "media_items"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate email surfaces as
// domain.ErrEmailTaken even when two registrations race past the lookup.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository with partial-update
// semantics: only non-nil fields are written.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.DOB != nil {
		values["dob"] = *update.DOB
	}
	if update.Mobile != nil {
		values["mobile"] = *update.Mobile
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.ProfileImage != nil {
		values["profile_image"] = *update.ProfileImage
	}

	if len(values) > 0 {
		res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(values)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// TouchLastLogin implements domain.UserRepository
func (r *UserRepositoryImpl) TouchLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}

// AddMedia implements domain.UserRepository
func (r *UserRepositoryImpl) AddMedia(ctx context.Context, item *domain.MediaItem) error {
	dbItem := &DBMediaItem{
		UserID:     item.UserID,
		Kind:       item.Kind,
		URL:        item.URL,
		UploadedAt: item.UploadedAt,
	}
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return err
	}
	item.ID = dbItem.ID
	return nil
}

// ListMedia implements domain.UserRepository
func (r *UserRepositoryImpl) ListMedia(ctx context.Context, userID uint) ([]domain.MediaItem, error) {
	var rows []DBMediaItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.MediaItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.MediaItem{
			ID:         row.ID,
			UserID:     row.UserID,
			Kind:       row.Kind,
			URL:        row.URL,
			UploadedAt: row.UploadedAt,
		})
	}
	return items, nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Mobile:       user.Mobile,
		DOB:          user.DOB,
		Location:     user.Location,
		ProfileImage: user.ProfileImage,
		LastLogin:    user.LastLogin,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Mobile:       dbUser.Mobile,
		DOB:          dbUser.DOB,
		Location:     dbUser.Location,
		ProfileImage: dbUser.ProfileImage,
		LastLogin:    dbUser.LastLogin,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
