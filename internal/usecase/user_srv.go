package usecase

import (
	"context"
	"errors"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/internal/dto/request"
	"project-portal/internal/dto/response"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*response.DeletedUserResponse, error)
	AddCredits(ctx context.Context, id uuid.UUID, req *request.AddCreditsRequest) (*response.UserResponse, error)
}

type userService struct {
	resolver IdentityResolver
	users    repository.UserRepository
	projects repository.ProjectRepository
	notifier Notifier
	hasher   CredentialHasher
	appURL   string
	log      *zap.Logger
}

func NewUserService(
	resolver IdentityResolver,
	repo *repository.Repository,
	notifier Notifier,
	hasher CredentialHasher,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	return &userService{
		resolver: resolver,
		users:    repo.User,
		projects: repo.Project,
		notifier: notifier,
		hasher:   hasher,
		appURL:   config.App.URL,
		log:      log.With(zap.String("service", "user")),
	}
}

// ListUsers pages through users. A zero limit returns every match.
func (us *userService) ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}
	if req.Page < 1 {
		req.Page = 1
	}

	users, err := us.users.FindAll(ctx, req.Description, req.Limit, req.Offset())
	if err != nil {
		return nil, internal("Failed to get users", err)
	}

	total, err := us.users.Count(ctx, req.Description)
	if err != nil {
		return nil, internal("Failed to count users", err)
	}

	return response.NewPaginatedResponse(response.UsersToResponse(users), req.Page, req.Limit, total), nil
}

func (us *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserDetailResponse, error) {
	user, err := us.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := us.projects.Find(ctx, repository.ProjectFilter{UserID: &user.ID})
	if err != nil {
		return nil, internal("Failed to get projects", err)
	}

	return &response.UserDetailResponse{
		UserResponse: response.UserToResponse(user),
		Projects:     response.ProjectsToResponse(projects),
	}, nil
}

func (us *userService) GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	if email == "" {
		return nil, validationFailed("Email is required")
	}

	user, err := us.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, internal("Failed to get user", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// CreateUser registers a user on behalf of an admin and mails the
// credentials. A mail failure is logged and the user is still returned.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	// 2. Email must be free in every role store
	email := normalizeEmail(req.Email)
	_, err := us.resolver.Resolve(ctx, entity.EmailContact(email))
	switch {
	case err == nil:
		return nil, newError(KindConflict, "User already exists", nil)
	case !IsKind(err, KindNotFound):
		return nil, err
	}

	// 3. Build and save
	user, err := newUser(us.hasher, us.appURL, req.FullName, email, req.Password, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	user.Address = req.Address

	if err := us.users.Create(ctx, user); err != nil {
		return nil, internal("Failed to create user", err)
	}

	// 4. Mail credentials
	if err := us.notifier.SendUserCreatedEmail(ctx, user.Email, req.Password); err != nil {
		us.log.Warn("Failed to send credentials email",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	us.log.Info("User created by admin", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	user, err := us.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.ProfilePic != nil {
		user.ProfilePic = req.ProfilePic
	}
	user.UpdatedAt = time.Now()

	if err := us.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, internal("Failed to update user", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes the user's projects first, then the user
func (us *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*response.DeletedUserResponse, error) {
	user, err := us.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := us.projects.DeleteByUser(ctx, user.ID)
	if err != nil {
		return nil, internal("Failed to delete projects", err)
	}

	if err := us.users.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, internal("Failed to delete user", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", user.ID.String()),
		zap.Int64("projects_deleted", deleted),
	)

	return &response.DeletedUserResponse{
		User:            response.UserToResponse(user),
		ProjectsDeleted: deleted,
	}, nil
}

func (us *userService) AddCredits(ctx context.Context, id uuid.UUID, req *request.AddCreditsRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	user, err := us.users.AddCredits(ctx, id, req.Amount)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, internal("Failed to add credits", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.users.FindByID(ctx, id)
	if err != nil {
		return nil, internal("Failed to get user", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}
	return user, nil
}
