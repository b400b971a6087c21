package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/you/playconnect/domain"
	"gorm.io/gorm"
)

// MatchRepositoryImpl implements domain.MatchRepository using GORM
type MatchRepositoryImpl struct {
	db *gorm.DB
}

// DBMatch represents the database model for Match (with GORM tags)
type DBMatch struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:128"`
	GameType    string `gorm:"index;size:64"`
	Date        time.Time `gorm:"index"`
	Location    string `gorm:"size:128"`
	Description string
	MaxPlayers  int
	CreatedByID uint   `gorm:"index"`
	Status      string `gorm:"index;size:16"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBMatch) TableName() string {
	return "matches"
}

// DBMatchParticipant is one row of a match's participant set. The composite
// primary key is the uniqueness guard for concurrent joins.
type DBMatchParticipant struct {
	MatchID  uint `gorm:"primaryKey;autoIncrement:false"`
	UserID   uint `gorm:"primaryKey;autoIncrement:false"`
	JoinedAt time.Time
}

// TableName returns the table name for GORM
func (DBMatchParticipant) TableName() string {
	return "match_participants"
}

// matchRow carries a match joined with its creator's display fields.
type matchRow struct {
	DBMatch
	CreatorName  string
	CreatorEmail string
}

// participantRow carries one resolved participant reference.
type participantRow struct {
	MatchID uint
	ID      uint
	Name    string
	Email   string
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) domain.MatchRepository {
	return &MatchRepositoryImpl{db: db}
}

// Create implements domain.MatchRepository. The creator joins their own
// match in the same transaction so creator ∈ participants from the start.
func (r *MatchRepositoryImpl) Create(ctx context.Context, match *domain.Match) error {
	dbMatch := &DBMatch{
		Title:       match.Title,
		GameType:    match.GameType,
		Date:        match.Date,
		Location:    match.Location,
		Description: match.Description,
		MaxPlayers:  match.MaxPlayers,
		CreatedByID: match.CreatedBy.ID,
		Status:      match.Status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbMatch).Error; err != nil {
			return err
		}
		return tx.Create(&DBMatchParticipant{
			MatchID:  dbMatch.ID,
			UserID:   match.CreatedBy.ID,
			JoinedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return err
	}

	match.ID = dbMatch.ID
	match.CreatedAt = dbMatch.CreatedAt
	match.UpdatedAt = dbMatch.UpdatedAt
	return nil
}

// FindByID implements domain.MatchRepository
func (r *MatchRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Match, error) {
	var row matchRow
	err := r.matchQuery(ctx).Where("matches.id = ?", id).Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}

	matches, err := r.resolveParticipants(ctx, []matchRow{row})
	if err != nil {
		return nil, err
	}
	return &matches[0], nil
}

// List implements domain.MatchRepository
func (r *MatchRepositoryImpl) List(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	q := r.matchQuery(ctx)
	if filter.GameType != "" {
		q = q.Where("matches.game_type = ?", filter.GameType)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(matches.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Status != "" {
		q = q.Where("matches.status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		q = q.Where("matches.date >= ?", *filter.DateFrom)
	}
	return r.findMatches(ctx, q)
}

// ListByUser implements domain.MatchRepository: matches the user created or
// participates in.
func (r *MatchRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Match, error) {
	q := r.matchQuery(ctx).Where(
		"matches.created_by_id = ? OR matches.id IN (SELECT match_id FROM match_participants WHERE user_id = ?)",
		userID, userID,
	)
	return r.findMatches(ctx, q)
}

// ListJoined implements domain.MatchRepository: matches the user participates
// in but did not create.
func (r *MatchRepositoryImpl) ListJoined(ctx context.Context, userID uint) ([]domain.Match, error) {
	q := r.matchQuery(ctx).Where(
		"matches.created_by_id <> ? AND matches.id IN (SELECT match_id FROM match_participants WHERE user_id = ?)",
		userID, userID,
	)
	return r.findMatches(ctx, q)
}

// Update implements domain.MatchRepository with partial-update semantics.
func (r *MatchRepositoryImpl) Update(ctx context.Context, id uint, update domain.MatchUpdate) (*domain.Match, error) {
	values := map[string]interface{}{}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.GameType != nil {
		values["game_type"] = *update.GameType
	}
	if update.Date != nil {
		values["date"] = *update.Date
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.MaxPlayers != nil {
		values["max_players"] = *update.MaxPlayers
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}

	if len(values) > 0 {
		res := r.db.WithContext(ctx).Model(&DBMatch{}).Where("id = ?", id).Updates(values)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrMatchNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete implements domain.MatchRepository
func (r *MatchRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&DBMatchParticipant{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&DBMatch{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrMatchNotFound
		}
		return nil
	})
}

// AddParticipant implements domain.MatchRepository. Touching the match row
// first takes its write lock for the rest of the transaction, so concurrent
// joins on the same match serialize and each capacity count sees every
// committed row: of N concurrent joins at the last open slot exactly one can
// succeed. Membership is checked before capacity so a repeat join reports
// ErrAlreadyJoined even when the match is full.
func (r *MatchRepositoryImpl) AddParticipant(ctx context.Context, matchID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBMatch{}).Where("id = ?", matchID).Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrMatchNotFound
		}

		var member int64
		err := tx.Model(&DBMatchParticipant{}).
			Where("match_id = ? AND user_id = ?", matchID, userID).
			Count(&member).Error
		if err != nil {
			return err
		}
		if member > 0 {
			return domain.ErrAlreadyJoined
		}

		ins := tx.Exec(`
			INSERT INTO match_participants (match_id, user_id, joined_at)
			SELECT ?, ?, ?
			WHERE (SELECT COUNT(*) FROM match_participants WHERE match_id = ?)
			    < (SELECT max_players FROM matches WHERE id = ?)`,
			matchID, userID, time.Now(), matchID, matchID,
		)
		if ins.Error != nil {
			if isDuplicateKey(ins.Error) {
				return domain.ErrAlreadyJoined
			}
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			return domain.ErrMatchFull
		}
		return nil
	})
}

// RemoveParticipant implements domain.MatchRepository
func (r *MatchRepositoryImpl) RemoveParticipant(ctx context.Context, matchID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ?", matchID, userID).
		Delete(&DBMatchParticipant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotJoined
	}
	return nil
}

// matchQuery joins matches with their creator's display fields.
func (r *MatchRepositoryImpl) matchQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("matches").
		Select("matches.*, users.name AS creator_name, users.email AS creator_email").
		Joins("JOIN users ON users.id = matches.created_by_id")
}

// findMatches runs a match query sorted ascending by scheduled time and
// resolves participant sets.
func (r *MatchRepositoryImpl) findMatches(ctx context.Context, q *gorm.DB) ([]domain.Match, error) {
	var rows []matchRow
	if err := q.Order("matches.date").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.resolveParticipants(ctx, rows)
}

// resolveParticipants loads the participant sets for a batch of matches in a
// single query, preserving join order.
func (r *MatchRepositoryImpl) resolveParticipants(ctx context.Context, rows []matchRow) ([]domain.Match, error) {
	matches := make([]domain.Match, 0, len(rows))
	if len(rows) == 0 {
		return matches, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var pRows []participantRow
	err := r.db.WithContext(ctx).
		Table("match_participants").
		Select("match_participants.match_id, users.id, users.name, users.email").
		Joins("JOIN users ON users.id = match_participants.user_id").
		Where("match_participants.match_id IN ?", ids).
		Order("match_participants.joined_at, users.id").
		Scan(&pRows).Error
	if err != nil {
		return nil, err
	}

	byMatch := make(map[uint][]domain.PublicUser, len(rows))
	for _, p := range pRows {
		byMatch[p.MatchID] = append(byMatch[p.MatchID], domain.PublicUser{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
		})
	}

	for _, row := range rows {
		matches = append(matches, domain.Match{
			ID:          row.ID,
			Title:       row.Title,
			GameType:    row.GameType,
			Date:        row.Date,
			Location:    row.Location,
			Description: row.Description,
			MaxPlayers:  row.MaxPlayers,
			CreatedBy: domain.PublicUser{
				ID:    row.CreatedByID,
				Name:  row.CreatorName,
				Email: row.CreatorEmail,
			},
			Participants: byMatch[row.ID],
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return matches, nil
}
