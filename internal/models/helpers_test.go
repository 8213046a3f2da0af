package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createTestCategory creates a category for the test and fails the test if
// that is not possible.
//
// Unnamed categories get a unique name so that tests do not collide with
// the uniqueness check.
func (suite *TestSuiteStandard) createTestCategory(category models.Category) models.Category {
	if category.Name == "" {
		category.Name = uuid.NewString()[:8]
	}

	err := models.DB.Create(&category).Error
	require.NoError(suite.T(), err, "category could not be created")

	return category
}

// createTestTransaction creates a transaction for the test and fails the
// test if that is not possible.
func (suite *TestSuiteStandard) createTestTransaction(transaction models.Transaction) models.Transaction {
	if transaction.Title == "" {
		transaction.Title = "Test transaction"
	}

	err := models.DB.Create(&transaction).Error
	require.NoError(suite.T(), err, "transaction could not be created")

	return transaction
}
