package models

import (
	"errors"
	"math"

	"gorm.io/gorm"
)

var ErrBudgetNotFinite = errors.New("the monthly budget must be a finite number")

// Settings is the singleton application state that is neither part of the
// category registry nor the transaction ledger: the monthly budget and the
// counter used for automatic category colors.
//
// NextColorIndex only ever increases, even when categories are deleted.
// Recomputing it from the category count would hand out colors that are
// already in use after a deletion.
type Settings struct {
	DefaultModel
	MonthlyBudget  float64 `json:"monthlyBudget" example:"1500"` // The monthly budget. May be any number, a UI can restrict this further.
	NextColorIndex uint    `json:"-"`                            // Palette index for the next automatically colored category
}

// LoadSettings returns the settings singleton.
//
// The row is created during migration, so this only fails when the database
// is unavailable.
func LoadSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.First(&settings).Error
	return settings, err
}

// SetMonthlyBudget replaces the monthly budget with the given amount.
//
// Any finite number is accepted, including negative ones. Whether negative
// budgets make sense is a decision for the UI.
func SetMonthlyBudget(db *gorm.DB, amount float64) (Settings, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Settings{}, ErrBudgetNotFinite
	}

	settings, err := LoadSettings(db)
	if err != nil {
		return Settings{}, err
	}

	err = db.Model(&settings).Update("monthly_budget", amount).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}
