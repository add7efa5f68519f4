package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/repository"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Title", "Price", "Image", "Description", "Rating", "Category", "InStock"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products.List() {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetBool(p.InStock)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
