package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice
type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidKind        = errors.New("user_type must be individual or legal")
	ErrCountryRequired    = errors.New("country is required")
	ErrUnknownCountry     = errors.New("country is not in the permitted list")
	ErrCompanyRequired    = errors.New("company id and name are required for legal entities")
)

func (s *Service) Register(ctx context.Context, req dto.RegisterRequestDTO) (*domain.User, error) {
	if req.Kind != auth.KindIndividual && req.Kind != auth.KindLegal {
		return nil, ErrInvalidKind
	}
	if req.Country == "" {
		return nil, ErrCountryRequired
	}
	if !domain.KnownCountry(req.Country) {
		return nil, ErrUnknownCountry
	}
	if req.Kind == auth.KindLegal && (req.CompanyID == "" || req.CompanyName == "") {
		return nil, ErrCompanyRequired
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", req.Username))
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(req.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         auth.RoleUser,
		Kind:         req.Kind,
		Country:      req.Country,
	}
	if req.Kind == auth.KindLegal {
		user.CompanyID = &req.CompanyID
		user.CompanyName = &req.CompanyName
	}

	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", req.Username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("password mismatch", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(auth.TokenTTL)

	claims := auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Kind:     user.Kind,
		Country:  user.Country,
	}
	token, err := s.jwtService.GenerateJWT(claims, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
