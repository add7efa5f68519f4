package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

type ProductInput struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
}

func (in ProductInput) validate() string {
	if strings.TrimSpace(in.Title) == "" {
		return "title is required"
	}
	if in.Price <= 0 {
		return "price must be greater than zero"
	}
	if in.Rating < 0 || in.Rating > 5 {
		return "rating must be between 0 and 5"
	}
	return ""
}

// POST /admin/products
func CreateProduct(products *repository.ProductRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product, err := products.Create(models.Product{
			Title:       strings.TrimSpace(input.Title),
			Price:       input.Price,
			Image:       input.Image,
			Images:      input.Images,
			Description: input.Description,
			Rating:      input.Rating,
			Category:    input.Category,
			InStock:     input.InStock,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		log.Infow("product created", "id", product.ID, "title", product.Title)
		c.JSON(http.StatusCreated, product)
	}
}
