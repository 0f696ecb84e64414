package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/starsky/backend/internal/core/domain"
)

// TeamRepository answers the two team visibility questions: which teams a
// manager owns, and which teams an employee belongs to.
type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("find teams by owner: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) FindByMemberID(ctx context.Context, userID int64) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("find teams by member: %w", err)
	}
	return teams, nil
}
