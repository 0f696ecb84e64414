package postgres

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/starsky/backend/internal/core/domain"
)

func seedTeams(t *testing.T, db *gorm.DB) (owner, member *domain.User, team *domain.Team) {
	t.Helper()
	ctx := context.Background()
	users := NewUserRepository(db)

	owner, err := users.Create(ctx, newUser("owner@b.com", true))
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	member, err = users.Create(ctx, newUser("member@b.com", true))
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}

	team = &domain.Team{Name: "Morning Crew", OwnerUserID: owner.ID}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	if err := db.Create(&domain.TeamMember{TeamID: team.ID, UserID: member.ID}).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	return owner, member, team
}

func TestTeamRepository_FindByOwnerID(t *testing.T) {
	db := testDB(t)
	owner, member, team := seedTeams(t, db)
	repo := NewTeamRepository(db)

	teams, err := repo.FindByOwnerID(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("find by owner failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != team.ID || teams[0].Name != "Morning Crew" {
		t.Fatalf("unexpected teams: %+v", teams)
	}

	// The member owns nothing.
	teams, err = repo.FindByOwnerID(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("find by owner failed: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no owned teams, got %+v", teams)
	}
}

func TestTeamRepository_FindByMemberID(t *testing.T) {
	db := testDB(t)
	owner, member, team := seedTeams(t, db)
	repo := NewTeamRepository(db)

	teams, err := repo.FindByMemberID(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("find by member failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != team.ID {
		t.Fatalf("unexpected teams: %+v", teams)
	}

	// Owning a team is not membership.
	teams, err = repo.FindByMemberID(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("find by member failed: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no membership teams, got %+v", teams)
	}
}
