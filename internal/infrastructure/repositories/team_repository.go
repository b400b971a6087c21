package repositories

import (
	"context"
	"time"

	"github.com/you/playconnect/domain"
	"gorm.io/gorm"
)

// TeamRepositoryImpl implements domain.TeamRepository using GORM
type TeamRepositoryImpl struct {
	db *gorm.DB
}

// DBTeam represents the database model for Team (with GORM tags)
type DBTeam struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128"`
	Description string
	CreatedByID uint `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBTeam) TableName() string {
	return "teams"
}

// DBTeamMember is one row of a team's member set.
type DBTeamMember struct {
	TeamID   uint `gorm:"primaryKey;autoIncrement:false"`
	UserID   uint `gorm:"primaryKey;autoIncrement:false"`
	JoinedAt time.Time
}

// TableName returns the table name for GORM
func (DBTeamMember) TableName() string {
	return "team_members"
}

// DBTeamJoinRequest is one pending join request awaiting a creator decision.
type DBTeamJoinRequest struct {
	TeamID      uint `gorm:"primaryKey;autoIncrement:false"`
	UserID      uint `gorm:"primaryKey;autoIncrement:false"`
	RequestedAt time.Time
}

// TableName returns the table name for GORM
func (DBTeamJoinRequest) TableName() string {
	return "team_join_requests"
}

// teamRow carries a team joined with its creator's display fields.
type teamRow struct {
	DBTeam
	CreatorName  string
	CreatorEmail string
}

// teamUserRow carries one resolved member or requester reference.
type teamUserRow struct {
	TeamID uint
	ID     uint
	Name   string
	Email  string
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) domain.TeamRepository {
	return &TeamRepositoryImpl{db: db}
}

// Create implements domain.TeamRepository. The creator becomes the first
// member in the same transaction.
func (r *TeamRepositoryImpl) Create(ctx context.Context, team *domain.Team) error {
	dbTeam := &DBTeam{
		Name:        team.Name,
		Description: team.Description,
		CreatedByID: team.CreatedBy.ID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbTeam).Error; err != nil {
			return err
		}
		return tx.Create(&DBTeamMember{
			TeamID:   dbTeam.ID,
			UserID:   team.CreatedBy.ID,
			JoinedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return err
	}

	team.ID = dbTeam.ID
	team.CreatedAt = dbTeam.CreatedAt
	return nil
}

// FindByID implements domain.TeamRepository
func (r *TeamRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Team, error) {
	var row teamRow
	err := r.teamQuery(ctx).Where("teams.id = ?", id).Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return r.resolveTeam(ctx, &row)
}

// FindByMember implements domain.TeamRepository: the team the user currently
// belongs to, if any.
func (r *TeamRepositoryImpl) FindByMember(ctx context.Context, userID uint) (*domain.Team, error) {
	var row teamRow
	err := r.teamQuery(ctx).
		Where("teams.id IN (SELECT team_id FROM team_members WHERE user_id = ?)", userID).
		Order("teams.id").
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return r.resolveTeam(ctx, &row)
}

// AddJoinRequest implements domain.TeamRepository. The insert refuses to
// create a request for an existing member in the same statement, and the
// composite primary key rejects a duplicate pending request.
func (r *TeamRepositoryImpl) AddJoinRequest(ctx context.Context, teamID, userID uint) error {
	res := r.db.WithContext(ctx).Exec(`
		INSERT INTO team_join_requests (team_id, user_id, requested_at)
		SELECT ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM team_members WHERE team_id = ? AND user_id = ?)`,
		teamID, userID, time.Now(), teamID, userID,
	)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return domain.ErrAlreadyRequested
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlreadyRequested
	}
	return nil
}

// ApproveJoinRequest implements domain.TeamRepository. Deleting the request
// and inserting the member happen in one transaction, so a user can never be
// both a member and a pending requester.
func (r *TeamRepositoryImpl) ApproveJoinRequest(ctx context.Context, teamID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&DBTeamJoinRequest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNoPendingRequest
		}
		return tx.Create(&DBTeamMember{
			TeamID:   teamID,
			UserID:   userID,
			JoinedAt: time.Now(),
		}).Error
	})
}

// RemoveJoinRequest implements domain.TeamRepository
func (r *TeamRepositoryImpl) RemoveJoinRequest(ctx context.Context, teamID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&DBTeamJoinRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoPendingRequest
	}
	return nil
}

// RemoveMember implements domain.TeamRepository
func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&DBTeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotTeamMember
	}
	return nil
}

// teamQuery joins teams with their creator's display fields.
func (r *TeamRepositoryImpl) teamQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("teams").
		Select("teams.*, users.name AS creator_name, users.email AS creator_email").
		Joins("JOIN users ON users.id = teams.created_by_id")
}

// resolveTeam loads member and pending-request sets for a team row.
func (r *TeamRepositoryImpl) resolveTeam(ctx context.Context, row *teamRow) (*domain.Team, error) {
	members, err := r.loadUsers(ctx, "team_members", "joined_at", row.ID)
	if err != nil {
		return nil, err
	}
	requests, err := r.loadUsers(ctx, "team_join_requests", "requested_at", row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Team{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedBy: domain.PublicUser{
			ID:    row.CreatedByID,
			Name:  row.CreatorName,
			Email: row.CreatorEmail,
		},
		Members:      members,
		JoinRequests: requests,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *TeamRepositoryImpl) loadUsers(ctx context.Context, table, orderCol string, teamID uint) ([]domain.PublicUser, error) {
	var rows []teamUserRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select(table+".team_id, users.id, users.name, users.email").
		Joins("JOIN users ON users.id = "+table+".user_id").
		Where(table+".team_id = ?", teamID).
		Order(table + "." + orderCol + ", users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]domain.PublicUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, domain.PublicUser{ID: row.ID, Name: row.Name, Email: row.Email})
	}
	return users, nil
}
