package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"superapp/catalog"
	"superapp/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/gin-gonic/gin"
)

func (api *API) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	search := c.Query("search")
	sortBy := c.Query("sort_by")
	sortDir := strings.ToLower(c.Query("sort_dir"))

	ctx := c.Request.Context()
	settings := api.Products.Settings(ctx)

	query := catalog.TableQuery{
		Search:  search,
		SortBy:  sortBy,
		SortDir: sortDir,
		Page:    page,
		PerPage: perPage,
	}.Normalize(settings.PerPage)

	list := api.Products.All(ctx)
	c.JSON(http.StatusOK, catalog.BuildTablePage(list, query))
}

func (api *API) UpsertProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	product.Name = strings.TrimSpace(product.Name)

	if err := validateProduct(product); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := api.Products.Upsert(c.Request.Context(), product)
	if err != nil {
		if err == catalog.ErrProductNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "product": saved})
}

func (api *API) DeleteProduct(c *gin.Context) {
	if err := api.Products.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// deleting an id that is already gone is not an error
	c.JSON(http.StatusOK, genericOK)
}

func (api *API) ImportProducts(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := catalog.ParseImport(data)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	// wholesale replacement, never a merge
	if err := api.Products.ReplaceAll(c.Request.Context(), list); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "total": len(list)})
}

func (api *API) ExportProducts(c *gin.Context) {
	list := api.Products.All(c.Request.Context())

	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := catalog.ExportJSON(list)
		if err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.Header("Content-Disposition", "attachment;filename=\"products_export.json\"")
		c.Data(http.StatusOK, "application/json", data)
	case "csv":
		data, err := catalog.ExportCSV(list)
		if err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.Header("Content-Disposition", "attachment;filename=\"products_export.csv\"")
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		handleExcelProducts(c, list)
	default:
		sendError(c, http.StatusBadRequest, "invalid-format")
	}
}

func handleExcelProducts(c *gin.Context, products []models.Product) {
	if len(products) == 0 {
		sendError(c, http.StatusNotFound, "products-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "E", 50)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "Id"},
		excelize.Cell{StyleID: headerStyle, Value: "Name"},
		excelize.Cell{StyleID: headerStyle, Value: "Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Stock"},
		excelize.Cell{StyleID: headerStyle, Value: "Created At"}}); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	for n, product := range products {
		row := make([]interface{}, 5)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: product.Id}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: product.Name}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: product.Price}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: product.Stock}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: product.CreatedAt}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	loc, _ := time.LoadLocation("Asia/Jakarta")
	fileName := fmt.Sprintf("report_products_%s.xlsx", time.Now().In(loc).Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

}

func validateProduct(product models.Product) error {

	if product.Name == "" {
		return errors.New("missing-name")
	}

	if product.Price <= 0 {
		return errors.New("invalid-price")
	}

	if product.Stock < 0 {
		return errors.New("invalid-stock")
	}

	return nil
}
