package controllers

import (
	"log"
	"net/http"

	"superapp/models"

	"github.com/gin-gonic/gin"
)

func (api *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, api.Products.Settings(c.Request.Context()))
}

func (api *API) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if settings.PerPage < 1 {
		sendError(c, http.StatusBadRequest, "invalid-per-page")
		return
	}

	if err := api.Products.SaveSettings(c.Request.Context(), settings); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, genericOK)
}
