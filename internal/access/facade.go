// Package access is the boundary between the transport layer and the queue
// engine. It resolves external caller ids and asks the group/role collaborator
// whether the caller may perform an operation; it holds no business rules.
package access

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"labqueue/internal/queue"
)

// Capability is what a caller needs within the group owning a queue.
type Capability int

const (
	// CapabilityMember allows self-service operations.
	CapabilityMember Capability = iota
	// CapabilityManage allows creating sessions, kicking, toggling and changing statuses.
	CapabilityManage
)

func (c Capability) String() string {
	if c == CapabilityManage {
		return "manage"
	}
	return "member"
}

// UserDirectory resolves an external (Telegram) id to a student id.
// Unknown ids yield queue.ErrStudentNotFound.
type UserDirectory interface {
	FindStudentByExternalID(ctx context.Context, externalID int64) (uint, error)
}

type SubjectCatalog interface {
	GroupOf(ctx context.Context, subjectID uint) (uint, error)
}

type RoleService interface {
	IsAuthorized(ctx context.Context, groupID, studentID uint, capability Capability) (bool, error)
}

// Facade exposes the queue engine to handlers.
type Facade struct {
	queues   *queue.Service
	users    UserDirectory
	subjects SubjectCatalog
	roles    RoleService
	log      *logrus.Logger
}

func NewFacade(queues *queue.Service, users UserDirectory, subjects SubjectCatalog, roles RoleService, logger *logrus.Logger) *Facade {
	return &Facade{queues: queues, users: users, subjects: subjects, roles: roles, log: logger}
}

// authorize runs before any queue lock is taken.
func (f *Facade) authorize(ctx context.Context, subjectID, studentID uint, capability Capability) error {
	groupID, err := f.subjects.GroupOf(ctx, subjectID)
	if err != nil {
		return err
	}
	ok, err := f.roles.IsAuthorized(ctx, groupID, studentID, capability)
	if err != nil {
		return errors.Wrap(err, "access: role check")
	}
	if !ok {
		f.log.WithFields(logrus.Fields{
			"subject_id": subjectID,
			"student_id": studentID,
			"capability": capability.String(),
		}).Debug("access denied")
		return queue.ErrUnauthorized
	}
	return nil
}

func (f *Facade) resolve(ctx context.Context, callerID int64) (uint, error) {
	return f.users.FindStudentByExternalID(ctx, callerID)
}

// resolveForQueue resolves the caller and checks capability on the group owning queueID.
func (f *Facade) resolveForQueue(ctx context.Context, queueID uint, callerID int64, capability Capability) (uint, error) {
	studentID, err := f.resolve(ctx, callerID)
	if err != nil {
		return 0, err
	}
	q, err := f.queues.Snapshot(ctx, queueID)
	if err != nil {
		return 0, err
	}
	if err := f.authorize(ctx, q.SubjectID, studentID, capability); err != nil {
		return 0, err
	}
	return studentID, nil
}

func (f *Facade) CreateSession(ctx context.Context, subjectID uint, callerID int64, cfg queue.Config) (*queue.Queue, error) {
	studentID, err := f.resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := f.authorize(ctx, subjectID, studentID, CapabilityManage); err != nil {
		return nil, err
	}
	return f.queues.CreateSession(ctx, subjectID, cfg)
}

func (f *Facade) GetCurrentSession(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	return f.queues.GetCurrentSession(ctx, subjectID)
}

func (f *Facade) GetActiveSession(ctx context.Context, subjectID uint) (*queue.Queue, error) {
	return f.queues.GetActiveSession(ctx, subjectID)
}

func (f *Facade) ListSessions(ctx context.Context, subjectID uint) ([]*queue.Queue, error) {
	return f.queues.ListSessions(ctx, subjectID)
}

func (f *Facade) Snapshot(ctx context.Context, queueID uint) (*queue.Queue, error) {
	return f.queues.Snapshot(ctx, queueID)
}

// Join books the caller into the queue. Only group membership is required.
func (f *Facade) Join(ctx context.Context, queueID uint, callerID int64, labNumber int, position *int) (*queue.Queue, queue.Entry, error) {
	studentID, err := f.resolveForQueue(ctx, queueID, callerID, CapabilityMember)
	if err != nil {
		return nil, queue.Entry{}, err
	}
	return f.queues.Join(ctx, queueID, studentID, labNumber, position)
}

// Leave removes the caller's own entry.
func (f *Facade) Leave(ctx context.Context, queueID uint, callerID int64) (*queue.Queue, error) {
	studentID, err := f.resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return f.queues.Leave(ctx, queueID, studentID)
}

func (f *Facade) Kick(ctx context.Context, queueID uint, callerID int64, targetID uint) (*queue.Queue, error) {
	if _, err := f.resolveForQueue(ctx, queueID, callerID, CapabilityManage); err != nil {
		return nil, err
	}
	return f.queues.Kick(ctx, queueID, targetID)
}

func (f *Facade) ChangeStatus(ctx context.Context, queueID uint, callerID int64, targetID uint, status queue.Status) (*queue.Queue, queue.Entry, error) {
	if _, err := f.resolveForQueue(ctx, queueID, callerID, CapabilityManage); err != nil {
		return nil, queue.Entry{}, err
	}
	return f.queues.ChangeStatus(ctx, queueID, targetID, status)
}

func (f *Facade) Toggle(ctx context.Context, queueID uint, callerID int64) (*queue.Queue, error) {
	if _, err := f.resolveForQueue(ctx, queueID, callerID, CapabilityManage); err != nil {
		return nil, err
	}
	return f.queues.Toggle(ctx, queueID)
}
