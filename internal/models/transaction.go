package models

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a single dated entry in the ledger.
//
// The sign of the amount carries the meaning: negative amounts are expenses,
// positive amounts are income. The date is the user-assigned calendar day
// and independent of CreatedAt, which orders entries within the same day.
type Transaction struct {
	DefaultModel
	Title      string     `json:"title" example:"Lunch"`
	Amount     float64    `json:"amount" example:"-14.50"`
	Date       types.Date `json:"date" example:"2024-01-02"`
	Note       string     `json:"note" example:"Pizza with the team"`
	CategoryID uuid.UUID  `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Category   Category   `json:"-"`
}

const maxTransactionTitleLength = 100

var (
	ErrTransactionTitleEmpty      = errors.New("the transaction title must not be empty")
	ErrTransactionTitleTooLong    = errors.New("the transaction title must not be longer than 100 characters")
	ErrTransactionAmountNotFinite = errors.New("the transaction amount must be a finite number")
)

// BeforeSave trims whitespace and defaults the date to the current day.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)

	err := checkTransactionTitle(toSave.Title)
	if err != nil {
		return err
	}

	err = checkTransactionAmount(toSave.Amount)
	if err != nil {
		return err
	}

	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
//
// Updates run the hooks against the loaded model, so the BeforeSave
// trimming does not reach the incoming values. Trimmed strings are written
// back into the update with SetColumn.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Title") {
		title := strings.TrimSpace(toSave.Title)
		err := checkTransactionTitle(title)
		if err != nil {
			return err
		}
		tx.Statement.SetColumn("Title", title)
	}

	if tx.Statement.Changed("Note") {
		tx.Statement.SetColumn("Note", strings.TrimSpace(toSave.Note))
	}

	if tx.Statement.Changed("Amount") {
		err := checkTransactionAmount(toSave.Amount)
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("CategoryID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
}

func checkTransactionTitle(title string) error {
	if title == "" {
		return ErrTransactionTitleEmpty
	}

	if utf8.RuneCountInString(title) > maxTransactionTitleLength {
		return ErrTransactionTitleTooLong
	}

	return nil
}

func checkTransactionAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrTransactionAmountNotFinite
	}

	return nil
}

// DeleteTransactionsByCategory removes all transactions referencing the
// category and reports how many were removed.
//
// It is used by the category cascade delete and exposed so that callers can
// tell users how many transactions a category delete will take with it.
func DeleteTransactionsByCategory(db *gorm.DB, categoryID uuid.UUID) (int64, error) {
	res := db.Where("category_id = ?", categoryID).Delete(&Transaction{})
	return res.RowsAffected, res.Error
}
