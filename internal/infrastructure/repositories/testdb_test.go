package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/playconnect/domain"
)

// openTestDB opens an isolated in-memory database and migrates the full
// schema. The named shared-cache DSN keeps every pooled connection on the
// same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&DBUser{},
		&DBMediaItem{},
		&DBMatch{},
		&DBMatchParticipant{},
		&DBTeam{},
		&DBTeamMember{},
		&DBTeamJoinRequest{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// seedUser inserts a user and returns it with its assigned id.
func seedUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()

	repo := NewUserRepository(db)
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashed_password123",
		Mobile:       "1234567890",
		DOB:          time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		Location:     "Berlin",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// seedMatch inserts a match created by the given user.
func seedMatch(t *testing.T, db *gorm.DB, creator *domain.User, maxPlayers int) *domain.Match {
	t.Helper()

	repo := NewMatchRepository(db)
	match := &domain.Match{
		Title:      "Friday Football",
		GameType:   "football",
		Date:       time.Now().Add(48 * time.Hour),
		Location:   "Berlin",
		MaxPlayers: maxPlayers,
		CreatedBy:  creator.Public(),
		Status:     domain.MatchUpcoming,
	}
	if err := repo.Create(context.Background(), match); err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return match
}

// seedTeam inserts a team created by the given user.
func seedTeam(t *testing.T, db *gorm.DB, creator *domain.User) *domain.Team {
	t.Helper()

	repo := NewTeamRepository(db)
	team := &domain.Team{
		Name:      "Weekend Squad",
		CreatedBy: creator.Public(),
	}
	if err := repo.Create(context.Background(), team); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}
