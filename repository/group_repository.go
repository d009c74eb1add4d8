// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitr-app/splitr-backend/models"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// CreateGroup saves a group and its membership list
func (r *GroupRepository) CreateGroup(group *models.Group) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO groups (id, name, description, created_by) VALUES ($1, $2, $3, $4)",
		group.ID, group.Name, group.Description, group.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}

	for _, member := range group.Members {
		_, err = tx.Exec(
			"INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)",
			group.ID, member.UserID, member.Role, member.JoinedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroup retrieves a group with its members. Returns (nil, nil)
// when no such group exists.
func (r *GroupRepository) GetGroup(id string) (*models.Group, error) {
	var group models.Group
	err := r.DB.QueryRow(
		"SELECT id, name, description, created_by FROM groups WHERE id = $1",
		id,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	members, err := r.loadMembers(group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return &group, nil
}

// ListGroups retrieves every group with its members
func (r *GroupRepository) ListGroups() ([]*models.Group, error) {
	rows, err := r.DB.Query("SELECT id, name, description, created_by FROM groups")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %v", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, group := range groups {
		members, err := r.loadMembers(group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

func (r *GroupRepository) loadMembers(groupID string) ([]models.GroupMember, error) {
	rows, err := r.DB.Query(
		"SELECT user_id, role, joined_at FROM group_members WHERE group_id = $1",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var member models.GroupMember
		if err := rows.Scan(&member.UserID, &member.Role, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %v", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
