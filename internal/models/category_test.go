package models_test

import (
	"strings"

	"github.com/centsible/backend/internal/colors"
	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Groceries   "
	icon := " cart "

	category := suite.createTestCategory(models.Category{Name: name, Icon: icon})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
	assert.Equal(suite.T(), strings.TrimSpace(icon), category.Icon)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	err := models.DB.Create(&models.Category{Name: ""}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameEmpty)

	// A name of only whitespace is empty after trimming
	err = models.DB.Create(&models.Category{Name: "   "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameLength() {
	_ = suite.createTestCategory(models.Category{Name: strings.Repeat("x", 30)})

	err := models.DB.Create(&models.Category{Name: strings.Repeat("x", 31)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameTooLong)

	// The limit counts characters, not bytes
	_ = suite.createTestCategory(models.Category{Name: strings.Repeat("ä", 30)})
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Food"})

	err := models.DB.Create(&models.Category{Name: "Food"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// Uniqueness ignores case
	err = models.DB.Create(&models.Category{Name: "FOOD"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// Leading and trailing whitespace is not a new name either
	err = models.DB.Create(&models.Category{Name: " food "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameReusableAfterDelete() {
	category := suite.createTestCategory(models.Category{Name: "Phoenix"})

	require.NoError(suite.T(), models.DB.Delete(&category).Error)

	_ = suite.createTestCategory(models.Category{Name: "Phoenix"})
}

func (suite *TestSuiteStandard) TestCategoryRename() {
	_ = suite.createTestCategory(models.Category{Name: "Rent"})
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	// Renaming to a used name fails
	err := models.DB.Model(&category).Select("Name").Updates(models.Category{Name: "rent"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// Renaming to a fresh name works
	err = models.DB.Model(&category).Select("Name").Updates(models.Category{Name: "Food"}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryRenameTrimsWhitespace() {
	category := suite.createTestCategory(models.Category{Name: "Rent"})

	err := models.DB.Model(&category).Select("Name").Updates(models.Category{Name: "  Food  "}).Error
	require.NoError(suite.T(), err)

	// The stored name is trimmed
	var reloaded models.Category
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", category.ID).Error)
	assert.Equal(suite.T(), "Food", reloaded.Name)

	// The trimmed name takes part in the uniqueness check
	err = models.DB.Create(&models.Category{Name: "food"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryRenameLengthAfterTrim() {
	category := suite.createTestCategory(models.Category{Name: "Rent"})

	// Surrounding whitespace does not count towards the length limit
	padded := "  " + strings.Repeat("a", 30) + "  "
	err := models.DB.Model(&category).Select("Name").Updates(models.Category{Name: padded}).Error
	require.NoError(suite.T(), err)

	var reloaded models.Category
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", category.ID).Error)
	assert.Equal(suite.T(), strings.Repeat("a", 30), reloaded.Name)

	err = models.DB.Model(&category).Select("Name").Updates(models.Category{Name: strings.Repeat("a", 31)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameTooLong)
}

func (suite *TestSuiteStandard) TestCategoryAutomaticColors() {
	first := suite.createTestCategory(models.Category{})
	second := suite.createTestCategory(models.Category{})
	third := suite.createTestCategory(models.Category{})

	assert.Equal(suite.T(), colors.ForIndex(0), first.Color)
	assert.Equal(suite.T(), colors.ForIndex(1), second.Color)
	assert.Equal(suite.T(), colors.ForIndex(2), third.Color)
}

func (suite *TestSuiteStandard) TestCategoryExplicitColor() {
	category := suite.createTestCategory(models.Category{Color: "#123456"})
	assert.Equal(suite.T(), "#123456", category.Color)

	// An explicit color does not consume a palette index
	next := suite.createTestCategory(models.Category{})
	assert.Equal(suite.T(), colors.ForIndex(0), next.Color)
}

func (suite *TestSuiteStandard) TestCategoryColorSequenceSurvivesDelete() {
	first := suite.createTestCategory(models.Category{})
	require.NoError(suite.T(), models.DB.Delete(&first).Error)

	// The replacement gets a fresh color, not the one already handed out
	second := suite.createTestCategory(models.Category{})
	assert.Equal(suite.T(), colors.ForIndex(1), second.Color)
}

func (suite *TestSuiteStandard) TestCategoryDeleteCascades() {
	category := suite.createTestCategory(models.Category{})
	other := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{Amount: -10, CategoryID: category.ID})
	_ = suite.createTestTransaction(models.Transaction{Amount: -20, CategoryID: category.ID})
	keep := suite.createTestTransaction(models.Transaction{Amount: -30, CategoryID: other.ID})

	require.NoError(suite.T(), models.DB.Delete(&category).Error)

	// All transactions of the deleted category are gone
	assert.Empty(suite.T(), category.Transactions(models.DB))

	// The other category keeps its transaction
	var remaining []models.Transaction
	require.NoError(suite.T(), models.DB.Find(&remaining).Error)
	require.Len(suite.T(), remaining, 1)
	assert.Equal(suite.T(), keep.ID, remaining[0].ID)
}

func (suite *TestSuiteStandard) TestDeleteTransactionsByCategoryCount() {
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{Amount: -1, CategoryID: category.ID})
	_ = suite.createTestTransaction(models.Transaction{Amount: -2, CategoryID: category.ID})

	count, err := models.DeleteTransactionsByCategory(models.DB, category.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}
