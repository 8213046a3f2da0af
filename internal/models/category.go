package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/centsible/backend/internal/colors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Category is a spending category that transactions are tagged with.
type Category struct {
	DefaultModel
	Name  string `json:"name" example:"Groceries"`  // Name of the category. Unique, ignoring case.
	Icon  string `json:"icon" example:"cart"`       // Reference to a display glyph. Opaque to the backend.
	Color string `json:"color" example:"#26A69A"`   // Display color. Assigned from the palette when empty at creation.
}

// The name length limit keeps category labels usable in chart legends.
const maxCategoryNameLength = 30

var (
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryNameTooLong   = errors.New("the category name must not be longer than 30 characters")
	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
)

// BeforeSave trims whitespace from all strings.
func (category *Category) BeforeSave(_ *gorm.DB) error {
	category.Name = strings.TrimSpace(category.Name)
	category.Icon = strings.TrimSpace(category.Icon)
	category.Color = strings.TrimSpace(category.Color)

	return nil
}

// BeforeCreate validates the name and assigns a palette color when none was
// given. The color counter is incremented in the same database transaction
// as the insert, so two concurrent creates can never consume the same index.
func (category *Category) BeforeCreate(tx *gorm.DB) error {
	_ = category.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	err := checkCategoryName(tx, toSave.Name, category.ID)
	if err != nil {
		return err
	}

	if toSave.Color == "" {
		settings, err := LoadSettings(tx)
		if err != nil {
			return err
		}

		category.Color = colors.ForIndex(settings.NextColorIndex)

		err = tx.Model(&Settings{}).
			Where("id = ?", settings.ID).
			Update("next_color_index", gorm.Expr("next_color_index + ?", 1)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// BeforeUpdate re-validates the name if it is changed.
//
// On updates, the hooks run against the loaded model, not the incoming
// values, so the BeforeSave trimming never reaches them. The trimmed values
// are written back into the update with SetColumn.
func (category *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Name") {
		name := strings.TrimSpace(toSave.Name)
		err := checkCategoryName(tx, name, category.ID)
		if err != nil {
			return err
		}
		tx.Statement.SetColumn("Name", name)
	}

	if tx.Statement.Changed("Icon") {
		tx.Statement.SetColumn("Icon", strings.TrimSpace(toSave.Icon))
	}

	if tx.Statement.Changed("Color") {
		tx.Statement.SetColumn("Color", strings.TrimSpace(toSave.Color))
	}

	return nil
}

// BeforeDelete removes all transactions referencing the category. The hook
// runs in the same database transaction as the delete itself, so no reader
// can observe the category gone while its transactions remain.
func (category *Category) BeforeDelete(tx *gorm.DB) error {
	count, err := DeleteTransactionsByCategory(tx, category.ID)
	if err != nil {
		return err
	}

	log.Debug().
		Str("category", category.ID.String()).
		Int64("transactions", count).
		Msg("cascade delete")

	return nil
}

// Transactions returns all transactions for this category.
func (category Category) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{CategoryID: category.ID}).Find(&transactions)
	return transactions
}

// checkCategoryName validates a category name. Uniqueness is checked with
// Unicode case folding, so "Food" and "FOOD" collide. The resource with the
// ID passed in exclude is skipped, which allows an update to keep its name.
func checkCategoryName(tx *gorm.DB, name string, exclude uuid.UUID) error {
	if name == "" {
		return ErrCategoryNameEmpty
	}

	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		return ErrCategoryNameTooLong
	}

	var categories []Category
	err := tx.Where("id != ?", exclude).Find(&categories).Error
	if err != nil {
		return err
	}

	fold := cases.Fold()
	folded := fold.String(name)
	for _, other := range categories {
		if fold.String(strings.TrimSpace(other.Name)) == folded {
			return ErrCategoryNameNotUnique
		}
	}

	return nil
}
