package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

// UncategorizedName is the bucket for products with a blank category.
const UncategorizedName = "Uncategorized"

// CategoryName normalizes a product's category for bucketing: trimmed,
// case-sensitive, blank mapped to the Uncategorized bucket.
func CategoryName(category string) string {
	name := strings.TrimSpace(category)
	if name == "" {
		return UncategorizedName
	}
	return name
}

// GroupByCategory folds the catalog into buckets sorted by name. Nothing is
// persisted; the grouping is recomputed on every read.
func GroupByCategory(products []models.Product) []models.CategoryGroup {
	buckets := make(map[string][]models.Product)
	for _, p := range products {
		name := CategoryName(p.Category)
		buckets[name] = append(buckets[name], p)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]models.CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, models.CategoryGroup{Name: name, Products: buckets[name]})
	}
	return groups
}

// GET /categories
func GetCategories(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, GroupByCategory(products.List()))
	}
}

// GET /category-details?category=
func GetCategoryDetails(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.Query("category"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}

		var matched []models.Product
		for _, p := range products.List() {
			if CategoryName(p.Category) == name {
				matched = append(matched, p)
			}
		}
		if matched == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, models.CategoryGroup{Name: name, Products: matched})
	}
}

// DELETE /admin/categories/:name
//
// Deleting a category deletes every product in its bucket. There is no undo.
func DeleteCategory(products *repository.ProductRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.Param("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
			return
		}

		removed, err := products.DeleteWhere(func(p models.Product) bool {
			return CategoryName(p.Category) == name
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if removed == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		log.Infow("category deleted", "name", name, "products_removed", removed)
		c.JSON(http.StatusOK, gin.H{
			"message":          "Category deleted",
			"products_removed": removed,
		})
	}
}
