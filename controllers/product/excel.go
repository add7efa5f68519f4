package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"github.com/tealeg/xlsx"
)

// POST /admin/products/import-excel
//
// Columns mirror the export: ID, Title, Price, Image, Description, Rating,
// Category, InStock. Rows with an existing ID update that product; rows
// without an ID create a new one. Malformed rows are skipped, not fatal.
func ImportProductsFromExcel(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			title := get(1)
			price, errPrice := strconv.ParseFloat(get(2), 64)
			image := get(3)
			description := get(4)
			rating, _ := strconv.ParseFloat(get(5), 64)
			category := get(6)
			inStock := strings.EqualFold(get(7), "true") || get(7) == "1"

			if title == "" || errPrice != nil || price <= 0 || rating < 0 || rating > 5 {
				skippedCount++
				continue
			}

			product := models.Product{
				ID:          id,
				Title:       title,
				Price:       price,
				Image:       image,
				Description: description,
				Rating:      rating,
				Category:    category,
				InStock:     inStock,
			}

			if id == "" {
				if _, err := products.Create(product); err != nil {
					skippedCount++
					continue
				}
				createdCount++
				continue
			}

			created, err := products.Upsert(product)
			if err != nil {
				skippedCount++
				continue
			}
			if created {
				createdCount++
			} else {
				updatedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
