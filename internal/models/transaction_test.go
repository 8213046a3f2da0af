package models_test

import (
	"math"
	"strings"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	category := suite.createTestCategory(models.Category{})

	title := "  Lunch \t"
	note := " Pizza with the team  "

	transaction := suite.createTestTransaction(models.Transaction{
		Title:      title,
		Note:       note,
		Amount:     -14.50,
		CategoryID: category.ID,
	})

	assert.Equal(suite.T(), strings.TrimSpace(title), transaction.Title)
	assert.Equal(suite.T(), strings.TrimSpace(note), transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionTitleEmpty() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.Transaction{Title: "", CategoryID: category.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTitleEmpty)

	err = models.DB.Create(&models.Transaction{Title: " \t ", CategoryID: category.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTitleEmpty)
}

func (suite *TestSuiteStandard) TestTransactionTitleLength() {
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{
		Title:      strings.Repeat("x", 100),
		CategoryID: category.ID,
	})

	err := models.DB.Create(&models.Transaction{
		Title:      strings.Repeat("x", 101),
		CategoryID: category.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTitleTooLong)
}

func (suite *TestSuiteStandard) TestTransactionAmountFinite() {
	category := suite.createTestCategory(models.Category{})

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := models.DB.Create(&models.Transaction{
			Title:      "Bogus",
			Amount:     amount,
			CategoryID: category.ID,
		}).Error
		assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotFinite)
	}

	// A rejected transaction must not be stored
	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	// Zero is a valid amount
	_ = suite.createTestTransaction(models.Transaction{Amount: 0, CategoryID: category.ID})
}

func (suite *TestSuiteStandard) TestTransactionRequiresCategory() {
	err := models.DB.Create(&models.Transaction{
		Title:      "Orphan",
		Amount:     -1,
		CategoryID: uuid.New(),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	category := suite.createTestCategory(models.Category{})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:     -5,
		CategoryID: category.ID,
	})

	assert.True(suite.T(), transaction.Date.Equal(types.Today()), "date is %s, should be today", transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionUpdateValidation() {
	category := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{Amount: -5, CategoryID: category.ID})

	err := models.DB.Model(&transaction).Select("Title").Updates(models.Transaction{Title: ""}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTitleEmpty)

	err = models.DB.Model(&transaction).Select("Amount").Updates(models.Transaction{Amount: math.NaN()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotFinite)

	err = models.DB.Model(&transaction).Select("CategoryID").Updates(models.Transaction{CategoryID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// Moving the transaction to an existing category works
	other := suite.createTestCategory(models.Category{})
	err = models.DB.Model(&transaction).Select("CategoryID").Updates(models.Transaction{CategoryID: other.ID}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestTransactionUpdateTrimsWhitespace() {
	category := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{Amount: -10, CategoryID: category.ID})

	err := models.DB.Model(&transaction).Select("Title", "Note").Updates(models.Transaction{Title: "  Lunch  ", Note: " pizza "}).Error
	require.NoError(suite.T(), err)

	// The stored values are trimmed, not the raw input
	var reloaded models.Transaction
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", transaction.ID).Error)
	assert.Equal(suite.T(), "Lunch", reloaded.Title)
	assert.Equal(suite.T(), "pizza", reloaded.Note)
}

func (suite *TestSuiteStandard) TestTransactionSignsPreserved() {
	category := suite.createTestCategory(models.Category{})

	expense := suite.createTestTransaction(models.Transaction{Amount: -27.12, CategoryID: category.ID})
	income := suite.createTestTransaction(models.Transaction{Amount: 3000, CategoryID: category.ID})

	var reloaded models.Transaction
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", expense.ID).Error)
	assert.Equal(suite.T(), -27.12, reloaded.Amount)

	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", income.ID).Error)
	assert.Equal(suite.T(), float64(3000), reloaded.Amount)
}
