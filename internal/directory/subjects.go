package directory

import (
	"context"

	"github.com/pkg/errors"

	"labqueue/internal/models"
)

func (s *Service) CreateSubject(ctx context.Context, title string, groupID uint, teacher string) (models.Subject, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).First(&group, groupID).Error; err != nil {
		return models.Subject{}, notFound(err, ErrGroupNotFound, "find group")
	}
	subject := models.Subject{Title: title, GroupID: groupID, Teacher: teacher}
	if err := s.db.WithContext(ctx).Create(&subject).Error; err != nil {
		return models.Subject{}, errors.Wrap(err, "directory: create subject")
	}
	return subject, nil
}

func (s *Service) SubjectsByGroup(ctx context.Context, groupID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("id").Find(&subjects).Error; err != nil {
		return nil, errors.Wrap(err, "directory: list subjects")
	}
	return subjects, nil
}

// GroupOf implements access.SubjectCatalog.
func (s *Service) GroupOf(ctx context.Context, subjectID uint) (uint, error) {
	var subject models.Subject
	if err := s.db.WithContext(ctx).Select("id", "group_id").First(&subject, subjectID).Error; err != nil {
		return 0, notFound(err, ErrSubjectNotFound, "find subject")
	}
	return subject.GroupID, nil
}
