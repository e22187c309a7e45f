package services

import (
	"context"

	"github.com/google/uuid"
	dbm "tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	"tripbuddy/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &dbm.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := buildProfileResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.Username != nil {
		account.Username = *req.Username
	}
	if req.AvatarURL != nil {
		account.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		account.Bio = *req.Bio
	}
	if req.IsHost != nil {
		account.IsHost = *req.IsHost
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildProfileResponse(account)
	return &resp, nil
}

func buildProfileResponse(account *dbm.Account) response_models.ProfileResponse {
	return response_models.ProfileResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
		Bio:       account.Bio,
		IsHost:    account.IsHost,
		CreatedAt: account.CreatedAt,
	}
}
