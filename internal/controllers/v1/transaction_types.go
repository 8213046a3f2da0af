package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	ledger_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Title      string     `json:"title" example:"Weekly groceries" default:""`                     // Title of the transaction
	Amount     float64    `json:"amount" example:"-27.12" default:"0"`                             // Amount. Negative values are spending, positive values are income.
	Date       types.Date `json:"date" example:"2024-03-17"`                                       // Day the transaction took place. Defaults to the current day.
	CategoryID uuid.UUID  `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`       // ID of the category the transaction belongs to
	Note       string     `json:"note" example:"Includes the birthday cake ingredients" default:""` // Optional free-form note
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Title:      editable.Title,
		Amount:     editable.Amount,
		Date:       editable.Date,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`    // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category this transaction references
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Title:      model.Title,
			Amount:     model.Amount,
			Date:       model.Date,
			CategoryID: model.CategoryID,
			Note:       model.Note,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Date     types.Date       `form:"date" filterField:"false"`     // Exact day the transaction took place
	Category ledger_uuid.UUID `form:"category" filterField:"false"` // Filter by category ID
	Title    string           `form:"title" filterField:"false"`    // By title
	Note     string           `form:"note" filterField:"false"`     // By note
	Search   string           `form:"search" filterField:"false"`   // Search for this text in title and note
	Month    string           `form:"month" filterField:"false"`    // Only transactions in this month, specified as YYYY-MM
	Offset   uint             `form:"offset" filterField:"false"`   // The offset of the first Transaction returned. Defaults to 0.
	Limit    int              `form:"limit" filterField:"false"`    // Maximum number of Transactions to return. Defaults to 50.
}
