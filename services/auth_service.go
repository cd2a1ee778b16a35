package services

import (
	"errors"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
	"smart-supermarket/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks a username/password pair and returns the
// matching user.
type CredentialVerifier interface {
	Authenticate(username, password string) (*models.User, error)
}

type AuthService struct {
	userRepo *repositories.UserRepository
}

var _ CredentialVerifier = (*AuthService)(nil)

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	if user.Status != "Active" {
		return nil, errors.New("account is inactive")
	}

	return user, nil
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, errors.New("username already taken")
	}
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, errors.New("email already registered")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCashier
	}
	if !models.IsValidRole(role) {
		return nil, errors.New("unknown role")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     role,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	// Login still succeeds if the timestamp write fails.
	_ = s.userRepo.UpdateLastLogin(user.ID)

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) GetProfile(userID int) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *AuthService) ChangePassword(userID int, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return errors.New("old password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hashed)
}
