package db

import (
	"strings"

	"github.com/pkg/errors"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=auth_repository.go -destination=../mocks/mock_auth_repository.go -package=mocks

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsUsernameExist(username string) error
	IsEmailExist(email string) error
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUsersByIDs(ids []uint) ([]models.User, error)
	AddToBlackList(blacklist *models.Blacklist) error
	IsTokenInBlacklist(token string) bool
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

// CreateUser inserts the user. A unique violation comes back as
// ErrUsernameTaken or ErrEmailTaken.
func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if err := a.DB.Create(user).Error; err != nil {
		if apiError.IsUniqueViolation(err) {
			return nil, apiError.GetUniqueContraintError(err)
		}
		return nil, errors.Wrap(err, "could not create user")
	}
	return user, nil
}

func (a *authRepo) IsUsernameExist(username string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return apiError.ErrUsernameTaken
	}
	return nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return apiError.ErrEmailTaken
	}
	return nil
}

// FindUserByUsername matches the username exactly, case included.
func (a *authRepo) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	err := a.DB.Where("username = ?", username).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "could not find user")
	}
	return user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "could not find user")
	}
	return &user, nil
}

func (a *authRepo) FindUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := a.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "could not find users")
	}
	return users, nil
}

func (a *authRepo) AddToBlackList(blacklist *models.Blacklist) error {
	blacklist.Token = normalizeToken(blacklist.Token)
	err := a.DB.Create(blacklist).Error
	if err != nil && apiError.IsUniqueViolation(err) {
		// already revoked
		return nil
	}
	return err
}

func normalizeToken(token string) string {
	return strings.TrimSpace(token)
}

func (a *authRepo) IsTokenInBlacklist(token string) bool {
	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", normalizeToken(token)).Count(&count)
	return count > 0
}
