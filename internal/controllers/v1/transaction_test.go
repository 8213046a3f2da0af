package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/types"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsTransactionList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsTransactionDetail() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -5, CategoryID: category.ID})

	recorder := test.Request(suite.T(), http.MethodOptions, transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions",
		fmt.Sprintf(`[{ "title": "Lunch", "amount": -14.5, "date": "2024-03-17", "note": "Pizza", "categoryId": "%s" }]`, category.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	data := response.Data[0].Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), "Lunch", data.Title)
	assert.Equal(suite.T(), -14.5, data.Amount)
	assert.True(suite.T(), data.Date.Equal(types.NewDate(2024, 3, 17)))
	assert.Equal(suite.T(), category.ID, data.CategoryID)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), data.Links.Category)
}

func (suite *TestSuiteStandard) TestCreateTransactionDateDefaultsToToday() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions",
		fmt.Sprintf(`[{ "title": "No date", "amount": -1, "categoryId": "%s" }]`, category.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.True(suite.T(), response.Data[0].Data.Date.Equal(types.Today()))
}

func (suite *TestSuiteStandard) TestCreateTransactionFails() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty title", fmt.Sprintf(`[{ "title": "", "amount": -1, "categoryId": "%s" }]`, category.ID), http.StatusBadRequest},
		{"NaN amount", fmt.Sprintf(`[{ "title": "Bogus", "amount": "NaN", "categoryId": "%s" }]`, category.ID), http.StatusBadRequest},
		{"unknown category", `[{ "title": "Orphan", "amount": -1, "categoryId": "51a0ef66-2ff9-45c9-94c0-0e344dd1ef78" }]`, http.StatusNotFound},
		{"no body", "", http.StatusBadRequest},
		{"not JSON", "not JSON", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsNewestFirst() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	first := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -1, CategoryID: category.ID})
	second := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -2, CategoryID: category.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The most recently created transaction comes first
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), second.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	groceries := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	rent := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Title:      "Weekly shopping",
		Amount:     -30,
		Date:       types.NewDate(2024, 3, 17),
		CategoryID: groceries.ID,
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Title:      "March rent",
		Amount:     -800,
		Date:       types.NewDate(2024, 3, 1),
		Note:       "Includes utilities",
		CategoryID: rent.ID,
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Title:      "April rent",
		Amount:     -800,
		Date:       types.NewDate(2024, 4, 1),
		CategoryID: rent.ID,
	})

	tests := []struct {
		query string
		count int
	}{
		{"date=2024-03-17", 1},
		{"date=2024-03-02", 0},
		{fmt.Sprintf("category=%s", rent.ID), 2},
		{"month=2024-03", 2},
		{"month=2024-04", 1},
		{"month=2024-05", 0},
		{"title=rent", 2},
		{"note=utilities", 1},
		{"search=rent", 2},
		{"search=shopping", 1},
		{fmt.Sprintf("month=2024-03&category=%s", rent.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	tests := []string{
		"month=2024-13",
		"month=March",
		"date=17.03.2024",
		"category=not-a-uuid",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -5, CategoryID: category.ID})

	recorder := test.Request(suite.T(), http.MethodGet, transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), httputil.ErrInvalidUUID.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/6817e8d1-2a4d-4193-9b71-b04ce2c5a565", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -5, CategoryID: category.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Links.Self, `{ "amount": -7.5, "note": "Corrected" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), -7.5, response.Data.Amount)
	assert.Equal(suite.T(), "Corrected", response.Data.Note)
}

func (suite *TestSuiteStandard) TestUpdateTransactionFails() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -5, CategoryID: category.ID})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty title", `{ "title": "" }`, http.StatusBadRequest},
		{"unknown category", `{ "categoryId": "a6e29dae-b180-41a5-9c5b-fd0dc4bf3ce3" }`, http.StatusNotFound},
		{"invalid body", `{ "title": }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, transaction.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: -5, CategoryID: category.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting a transaction does not delete its category
	recorder = test.Request(suite.T(), http.MethodGet, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
