package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/aggregate"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)

	r.OPTIONS("/days", OptionsSummaryDays)
	r.GET("/days", GetSummaryDays)
}

type CategorySummary struct {
	Category Category        `json:"category"` // The category
	Spent    decimal.Decimal `json:"spent"`    // Sum of the absolute expense amounts for this category
}

type Summary struct {
	MonthlyBudget   float64           `json:"monthlyBudget" example:"1500"` // The monthly budget
	Spent           decimal.Decimal   `json:"spent"`                        // Sum of the absolute amounts of all expenses
	RemainingBudget decimal.Decimal   `json:"remainingBudget"`              // Budget minus spent. Negative when the budget is exceeded.
	Categories      []CategorySummary `json:"categories"`                   // Spending per category, largest first. Categories without expenses are omitted.
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                                                 // The summary
	Error *string  `json:"error" example:"the month query parameter must be specified as YYYY-MM"` // The error, if any occurred
}

type TransactionDay struct {
	Date         types.Date      `json:"date" example:"2024-03-17"` // The calendar day
	Total        decimal.Decimal `json:"total"`                     // Signed sum of all amounts of the day
	Transactions []Transaction   `json:"transactions"`              // Transactions of the day, newest first
}

type SummaryDaysResponse struct {
	Data  []TransactionDay `json:"data"`                                                                 // Days with transactions, most recent day first
	Error *string          `json:"error" example:"the month query parameter must be specified as YYYY-MM"` // The error, if any occurred
}

type summaryQuery struct {
	Month string `form:"month"` // Only consider transactions in this month, specified as YYYY-MM
}

// ledgerTransactions returns the transactions the summary endpoints operate
// on, optionally restricted to a single month.
func ledgerTransactions(c *gin.Context) ([]models.Transaction, bool) {
	var filter summaryQuery
	_ = c.Bind(&filter)

	var month time.Time
	if filter.Month != "" {
		var err error
		month, err = time.Parse("2006-01", filter.Month)
		if err != nil {
			s := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, SummaryResponse{
				Error: &s,
			})
			return nil, false
		}
	}

	var transactions []models.Transaction
	err := models.DB.Order("created_at DESC, rowid DESC").Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return nil, false
	}

	// The aggregates work on the full set in memory anyway, so the month
	// restriction is applied there as well.
	if filter.Month != "" {
		inMonth := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Date.InMonth(month.Year(), month.Month()) {
				inMonth = append(inMonth, t)
			}
		}
		transactions = inMonth
	}

	return transactions, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary/days [options]
func OptionsSummaryDays(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the spending summary: total spent, remaining budget and the per category breakdown
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			month	query	string	false	"Only consider transactions in this month, specified as YYYY-MM"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	transactions, ok := ledgerTransactions(c)
	if !ok {
		return
	}

	var categories []models.Category
	err := models.DB.Order("created_at ASC, rowid ASC").Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	spent := aggregate.TotalSpent(transactions)

	breakdown := aggregate.CategoryBreakdown(transactions, categories)
	categorySummaries := make([]CategorySummary, 0, len(breakdown))
	for _, spend := range breakdown {
		apiResource, err := newCategory(c, models.DB, spend.Category)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SummaryResponse{
				Error: &s,
			})
			return
		}

		categorySummaries = append(categorySummaries, CategorySummary{
			Category: apiResource,
			Spent:    spend.Amount,
		})
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &Summary{
		MonthlyBudget:   settings.MonthlyBudget,
		Spent:           spent,
		RemainingBudget: aggregate.RemainingBudget(settings.MonthlyBudget, spent),
		Categories:      categorySummaries,
	}})
}

// @Summary		Get transactions by day
// @Description	Returns all transactions grouped by the day they took place
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryDaysResponse
// @Failure		400	{object}	SummaryDaysResponse
// @Failure		500	{object}	SummaryDaysResponse
// @Param			month	query	string	false	"Only consider transactions in this month, specified as YYYY-MM"
// @Router			/v1/summary/days [get]
func GetSummaryDays(c *gin.Context) {
	transactions, ok := ledgerTransactions(c)
	if !ok {
		return
	}

	groups := aggregate.GroupByDate(transactions)

	data := make([]TransactionDay, 0, len(groups))
	for _, group := range groups {
		day := TransactionDay{
			Date:         group.Date,
			Total:        group.Total,
			Transactions: make([]Transaction, 0, len(group.Transactions)),
		}

		for _, transaction := range group.Transactions {
			day.Transactions = append(day.Transactions, newTransaction(c, transaction))
		}

		data = append(data, day)
	}

	c.JSON(http.StatusOK, SummaryDaysResponse{Data: data})
}
