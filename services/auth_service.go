package services

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/db"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"github.com/techagentng/bookxchange/services/jwt"
	"github.com/techagentng/bookxchange/services/utils"
)

// AuthService handles registration, login and session tokens
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.User, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(token string) error
	Authenticate(token string) (*models.User, error)
	IssueToken(user *models.User) (string, error)
	GetUser(id uint) (*models.User, error)
}

type authService struct {
	Config        *config.Config
	authRepo      db.AuthRepository
	log           *logrus.Logger
	checkPassword func(password, hash string) bool
}

func NewAuthService(authRepo db.AuthRepository, conf *config.Config, log *logrus.Logger) AuthService {
	return &authService{
		Config:        conf,
		authRepo:      authRepo,
		log:           log,
		checkPassword: utils.CheckPasswordHash,
	}
}

func (a *authService) Register(req *models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := a.authRepo.IsUsernameExist(req.Username); err != nil {
		return nil, passOrInternal(a.log, err, "register")
	}
	if err := a.authRepo.IsEmailExist(req.Email); err != nil {
		return nil, passOrInternal(a.log, err, "register")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, passOrInternal(a.log, err, "hash password")
	}

	// the unique indexes still catch a concurrent registration
	user, err := a.authRepo.CreateUser(&models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		return nil, passOrInternal(a.log, err, "register")
	}
	a.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Login returns the same error for an unknown user and a wrong password.
func (a *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	if req.Username == "" || req.Password == "" {
		return nil, apiError.ErrInvalidCredentials
	}

	foundUser, err := a.authRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, apiError.ErrNotFound) {
			// hash anyway so response time does not tell which usernames exist
			a.checkPassword(req.Password, utils.DummyHash)
			return nil, apiError.ErrInvalidCredentials
		}
		return nil, passOrInternal(a.log, err, "login")
	}
	if !a.checkPassword(req.Password, foundUser.HashedPassword) {
		return nil, apiError.ErrInvalidCredentials
	}

	accessToken, err := a.IssueToken(foundUser)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{
		UserResponse: foundUser.ToResponse(),
		AccessToken:  accessToken,
	}, nil
}

func (a *authService) IssueToken(user *models.User) (string, error) {
	token, err := jwt.GenerateSessionToken(user.ID, a.Config.SessionSecret, a.Config.SessionMaxAge)
	if err != nil {
		return "", passOrInternal(a.log, err, "issue token")
	}
	return token, nil
}

func (a *authService) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := a.authRepo.AddToBlackList(&models.Blacklist{Token: token}); err != nil {
		return passOrInternal(a.log, err, "logout")
	}
	return nil
}

// Authenticate resolves a session token to its user.
func (a *authService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, apiError.ErrLoginRequired
	}
	if a.authRepo.IsTokenInBlacklist(token) {
		return nil, apiError.ErrLoginRequired
	}
	claims, err := jwt.ValidateAndGetClaims(token, a.Config.SessionSecret)
	if err != nil {
		return nil, apiError.ErrLoginRequired
	}
	userID, err := jwt.UserID(claims)
	if err != nil {
		return nil, apiError.ErrLoginRequired
	}

	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, apiError.ErrNotFound) {
			return nil, apiError.ErrLoginRequired
		}
		return nil, passOrInternal(a.log, err, "authenticate")
	}
	return user, nil
}

func (a *authService) GetUser(id uint) (*models.User, error) {
	user, err := a.authRepo.FindUserByID(id)
	if err != nil {
		return nil, passOrInternal(a.log, err, "get user")
	}
	return user, nil
}
