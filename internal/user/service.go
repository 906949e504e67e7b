package user

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/cache"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/department"
	"github.com/saulo-duarte/okrun-lambda/internal/validation"
)

const (
	ListCacheKey = "users_list"
	ListCacheTTL = 300 * time.Second
)

var (
	ErrUserNotFound       = apperror.NotFound("user")
	ErrUnauthenticated    = apperror.Unauthorized("authentication required")
	ErrAdminRoleImmutable = apperror.Immutable("cannot change the role of an Admin")
	ErrAdminStatusLocked  = apperror.Immutable("cannot change the status of an Admin")
	ErrAdminUndeletable   = apperror.Immutable("cannot delete an Admin account")
	ErrOwnRoleChange      = apperror.Unauthorized("you cannot change your own role")
	ErrSelfDeactivation   = apperror.Unauthorized("you cannot deactivate your own account")
	ErrSelfDeletion       = apperror.Unauthorized("you cannot delete your own account")
	ErrInactiveAccount    = apperror.Unauthorized("your account is inactive")
)

type UserService interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id uint) (*User, error)
	UpdateRole(ctx context.Context, id uint, in UpdateRoleInput) (*RoleChange, error)
	UpdateStatus(ctx context.Context, id uint, in UpdateStatusInput) (*User, error)
	Delete(ctx context.Context, id uint) (*User, error)
	Profile(ctx context.Context) (*ProfileView, error)
	UpdateProfile(ctx context.Context, in ProfileInput) (*ProfileView, error)
	ResolveActor(ctx context.Context, userID uint) (auth.Actor, error)
}

type userService struct {
	repo        UserRepository
	departments department.DepartmentService
	cache       cache.Cache
}

func NewService(repo UserRepository, departments department.DepartmentService, c cache.Cache) UserService {
	return &userService{
		repo:        repo,
		departments: departments,
		cache:       c,
	}
}

func (s *userService) List(ctx context.Context) ([]User, error) {
	var users []User
	err := s.cache.Remember(ctx, ListCacheKey, ListCacheTTL, &users, func() (interface{}, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load users")
		return nil, err
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateRole(ctx context.Context, id uint, in UpdateRoleInput) (*RoleChange, error) {
	log := config.WithContext(ctx).WithField("user_id", id)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.DepartmentID != nil {
		if err := s.departments.Exists(ctx, *in.DepartmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return nil, apperror.Field("department_id", "the selected department_id is invalid")
			}
			return nil, err
		}
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if target.IsAdmin() {
		log.Warn("Rejected role change of an Admin")
		return nil, ErrAdminRoleImmutable
	}
	if target.ID == actor.UserID && !actor.IsAdmin() {
		log.Warn("Rejected role change of own account")
		return nil, ErrOwnRoleChange
	}

	oldRole := target.RoleName()

	if err := s.repo.UpdateFields(ctx, id, map[string]interface{}{
		"role_id":       *in.RoleID,
		"department_id": in.DepartmentID,
	}); err != nil {
		log.WithError(err).Error("Failed to update user role")
		return nil, err
	}
	s.forgetList(ctx)

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	change := &RoleChange{User: updated, OldRole: oldRole, NewRole: updated.RoleName()}
	log.WithFields(logrus.Fields{
		"old_role": change.OldRole,
		"new_role": change.NewRole,
	}).Info("User role updated")
	return change, nil
}

func (s *userService) UpdateStatus(ctx context.Context, id uint, in UpdateStatusInput) (*User, error) {
	log := config.WithContext(ctx).WithField("user_id", id)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if target.IsAdmin() {
		log.Warn("Rejected status change of an Admin")
		return nil, ErrAdminStatusLocked
	}
	if target.ID == actor.UserID && in.Status == StatusInactive {
		log.Warn("Rejected self deactivation")
		return nil, ErrSelfDeactivation
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]interface{}{"status": in.Status}); err != nil {
		log.WithError(err).Error("Failed to update user status")
		return nil, err
	}
	s.forgetList(ctx)

	target.Status = in.Status
	log.WithField("status", in.Status).Info("User status updated")
	return target, nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*User, error) {
	log := config.WithContext(ctx).WithField("user_id", id)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if target.IsAdmin() {
		log.Warn("Rejected deletion of an Admin")
		return nil, ErrAdminUndeletable
	}
	if target.ID == actor.UserID {
		log.Warn("Rejected deletion of own account")
		return nil, ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.WithError(err).Error("Failed to delete user")
		return nil, err
	}
	s.forgetList(ctx)

	log.Info("User deleted")
	return target, nil
}

func (s *userService) Profile(ctx context.Context) (*ProfileView, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	view := toProfileView(u)
	return &view, nil
}

func (s *userService) UpdateProfile(ctx context.Context, in ProfileInput) (*ProfileView, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	log := config.WithContext(ctx).WithField("user_id", actor.UserID)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = *in.AvatarURL
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, actor.UserID, fields); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrUserNotFound
			}
			log.WithError(err).Error("Failed to update profile")
			return nil, err
		}
		s.forgetList(ctx)
		log.Info("Profile updated")
	}

	return s.Profile(ctx)
}

// forgetList drops the cached user list. A failure is logged, not returned:
// the write has already been committed.
func (s *userService) forgetList(ctx context.Context) {
	if err := s.cache.Forget(ctx, ListCacheKey); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to invalidate users list cache")
	}
}

// ResolveActor returns the stored role of an active user.
func (s *userService) ResolveActor(ctx context.Context, userID uint) (auth.Actor, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return auth.Actor{}, err
	}
	if u.Status == StatusInactive {
		return auth.Actor{}, ErrInactiveAccount
	}
	return auth.Actor{UserID: u.ID, RoleID: u.RoleID.Normalize()}, nil
}

func actorFrom(ctx context.Context) (auth.Actor, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return auth.Actor{}, ErrUnauthenticated
	}
	return actor, nil
}
