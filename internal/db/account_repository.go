package db

import (
	"github.com/Ashwinn11/gutbuddy/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

func (repo *AccountRepository) CountAccounts() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Account{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AccountRepository) FindByID(accountID uint) (models.Account, error) {
	var account models.Account
	if err := repo.database.First(&account, accountID).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// FindFirst returns the single local account.
func (repo *AccountRepository) FindFirst() (models.Account, error) {
	var account models.Account
	if err := repo.database.Order("id ASC").First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) FindByNormalizedEmail(email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}

func (repo *AccountRepository) UpdatePassword(accountID uint, passwordHash string) error {
	return repo.database.Model(&models.Account{}).Where("id = ?", accountID).
		Update("password_hash", passwordHash).Error
}

func (repo *AccountRepository) UpdateRecoveryCodeHash(accountID uint, recoveryHash string) error {
	return repo.database.Model(&models.Account{}).Where("id = ?", accountID).
		Update("recovery_code_hash", recoveryHash).Error
}
