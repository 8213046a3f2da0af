package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for the monthly budget with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
	r.PUT("", UpdateBudget)
}

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	MonthlyBudget float64 `json:"monthlyBudget" example:"1500" default:"0"` // The monthly budget
}

type Budget struct {
	MonthlyBudget float64 `json:"monthlyBudget" example:"1500"` // The monthly budget
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                              // The budget
	Error *string `json:"error" example:"the monthly budget must be finite"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budget
// @Description	Returns the monthly budget
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &Budget{MonthlyBudget: settings.MonthlyBudget}})
}

// @Summary		Set budget
// @Description	Replaces the monthly budget
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [put]
func UpdateBudget(c *gin.Context) {
	var data BudgetEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.SetMonthlyBudget(models.DB, data.MonthlyBudget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &Budget{MonthlyBudget: settings.MonthlyBudget}})
}
