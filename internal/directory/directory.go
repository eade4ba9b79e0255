// Package directory stores users, groups and subjects and answers the
// identity, catalog and role questions the queue engine depends on.
package directory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"labqueue/internal/access"
	"labqueue/internal/models"
	"labqueue/internal/queue"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidRole     = errors.New("unknown group role")
)

type Service struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewService(db *gorm.DB, logger *logrus.Logger) *Service {
	return &Service{db: db, log: logger}
}

var (
	_ access.UserDirectory  = (*Service)(nil)
	_ access.SubjectCatalog = (*Service)(nil)
	_ access.RoleService    = (*Service)(nil)
)

func notFound(err, kind error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kind
	}
	return errors.Wrap(err, "directory: "+op)
}

// FindOrCreateUser registers a Telegram user on first contact. The very first
// user of the installation becomes the owner.
func (s *Service) FindOrCreateUser(ctx context.Context, telegramID int64, username, fullName string) (models.User, bool, error) {
	db := s.db.WithContext(ctx)

	user, err := s.FindUserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, false, err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return models.User{}, false, errors.Wrap(err, "directory: count users")
	}
	role := models.GlobalRoleUser
	if count == 0 {
		role = models.GlobalRoleOwner
	}

	user = models.User{
		TelegramID: telegramID,
		Username:   username,
		FullName:   fullName,
		GlobalRole: role,
	}
	if err := db.Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration of the same id.
		if existing, findErr := s.FindUserByTelegramID(ctx, telegramID); findErr == nil {
			return existing, false, nil
		}
		return models.User{}, false, errors.Wrap(err, "directory: create user")
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "telegram_id": telegramID, "role": role}).Info("user registered")
	return user, true, nil
}

func (s *Service) FindUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		return models.User{}, notFound(err, ErrUserNotFound, "find user")
	}
	return user, nil
}

// UsersByID loads the given users keyed by id; unknown ids are skipped.
func (s *Service) UsersByID(ctx context.Context, ids []uint) (map[uint]models.User, error) {
	out := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "directory: load users")
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// FindStudentByExternalID implements access.UserDirectory.
func (s *Service) FindStudentByExternalID(ctx context.Context, externalID int64) (uint, error) {
	user, err := s.FindUserByTelegramID(ctx, externalID)
	if errors.Is(err, ErrUserNotFound) {
		return 0, queue.ErrStudentNotFound
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
