package controllers

import (
	"net/http"

	"superapp/catalog"
	"superapp/models"

	"github.com/gin-gonic/gin"
)

func (api *API) GetDashboard(c *gin.Context) {
	list := api.Products.All(c.Request.Context())

	c.JSON(http.StatusOK, models.DashboardResponse{
		Summary: catalog.BuildSummary(list),
		Chart:   api.Chart.Render(catalog.BuildChartData(list)),
	})
}
