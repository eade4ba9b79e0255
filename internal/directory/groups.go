package directory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"labqueue/internal/access"
	"labqueue/internal/models"
)

// CreateGroupFromChat registers a chat as a group; the registering admin becomes its headman.
// Registering the same chat twice returns the existing group.
func (s *Service) CreateGroupFromChat(ctx context.Context, chatID int64, title string, adminTelegramID int64) (models.Group, error) {
	admin, err := s.FindUserByTelegramID(ctx, adminTelegramID)
	if err != nil {
		return models.Group{}, err
	}

	if existing, err := s.groupByChat(ctx, chatID); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrGroupNotFound) {
		return models.Group{}, err
	}

	group := models.Group{
		Name:           title,
		TelegramChatID: chatID,
		CreatedByID:    admin.ID,
		Members:        []models.GroupMember{{UserID: admin.ID, Role: models.RoleHeadman}},
	}
	if err := s.db.WithContext(ctx).Create(&group).Error; err != nil {
		return models.Group{}, errors.Wrap(err, "directory: create group")
	}
	s.log.WithFields(logrus.Fields{"group_id": group.ID, "chat_id": chatID}).Info("group registered")
	return group, nil
}

func (s *Service) groupByChat(ctx context.Context, chatID int64) (models.Group, error) {
	var group models.Group
	err := s.db.WithContext(ctx).
		Preload("Members").
		Where("telegram_chat_id = ?", chatID).
		First(&group).Error
	if err != nil {
		return models.Group{}, notFound(err, ErrGroupNotFound, "find group")
	}
	return group, nil
}

// AddMember joins a registered user to the chat's group as a student. Existing members are left as they are.
func (s *Service) AddMember(ctx context.Context, chatID, telegramID int64) (models.Group, error) {
	group, err := s.groupByChat(ctx, chatID)
	if err != nil {
		return models.Group{}, err
	}
	user, err := s.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		return models.Group{}, err
	}
	for _, m := range group.Members {
		if m.UserID == user.ID {
			return group, nil
		}
	}

	member := models.GroupMember{GroupID: group.ID, UserID: user.ID, Role: models.RoleStudent}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return models.Group{}, errors.Wrap(err, "directory: add member")
	}
	group.Members = append(group.Members, member)
	return group, nil
}

// SetMemberRole changes the role of an existing member.
func (s *Service) SetMemberRole(ctx context.Context, chatID, telegramID int64, role string) (models.GroupMember, error) {
	switch role {
	case models.RoleStudent, models.RoleHeadman, models.RoleTeacher:
	default:
		return models.GroupMember{}, ErrInvalidRole
	}
	group, err := s.groupByChat(ctx, chatID)
	if err != nil {
		return models.GroupMember{}, err
	}
	user, err := s.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		return models.GroupMember{}, err
	}

	var member models.GroupMember
	err = s.db.WithContext(ctx).Where("group_id = ? AND user_id = ?", group.ID, user.ID).First(&member).Error
	if err != nil {
		return models.GroupMember{}, notFound(err, ErrUserNotFound, "find member")
	}
	if err := s.db.WithContext(ctx).Model(&member).Update("role", role).Error; err != nil {
		return models.GroupMember{}, errors.Wrap(err, "directory: set role")
	}
	return member, nil
}

// GroupIDByChat resolves a chat to its group id.
func (s *Service) GroupIDByChat(ctx context.Context, chatID int64) (uint, error) {
	group, err := s.groupByChat(ctx, chatID)
	if err != nil {
		return 0, err
	}
	return group.ID, nil
}

// MyGroups lists the groups the Telegram user belongs to. Unknown users have none.
func (s *Service) MyGroups(ctx context.Context, telegramID int64) ([]models.Group, error) {
	user, err := s.FindUserByTelegramID(ctx, telegramID)
	if errors.Is(err, ErrUserNotFound) {
		return []models.Group{}, nil
	}
	if err != nil {
		return nil, err
	}

	var groupIDs []uint
	err = s.db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("user_id = ?", user.ID).
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "directory: my memberships")
	}
	groups := []models.Group{}
	if len(groupIDs) == 0 {
		return groups, nil
	}
	err = s.db.WithContext(ctx).
		Preload("Members").
		Where("id IN ?", groupIDs).
		Order("id").
		Find(&groups).Error
	if err != nil {
		return nil, errors.Wrap(err, "directory: my groups")
	}
	return groups, nil
}

// IsAuthorized implements access.RoleService. The installation owner may do anything.
func (s *Service) IsAuthorized(ctx context.Context, groupID, studentID uint, capability access.Capability) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "directory: load user")
	}
	if user.GlobalRole == models.GlobalRoleOwner {
		return true, nil
	}

	var member models.GroupMember
	err := s.db.WithContext(ctx).Where("group_id = ? AND user_id = ?", groupID, studentID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "directory: load member")
	}

	if capability == access.CapabilityManage {
		return member.Role == models.RoleHeadman || member.Role == models.RoleTeacher, nil
	}
	return true, nil
}
