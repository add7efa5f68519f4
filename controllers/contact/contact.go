package contactControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// POST /contact
func SubmitMessage(messages *repository.ContactRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		required := map[string]string{
			"first name": input.FirstName,
			"last name":  input.LastName,
			"email":      input.Email,
			"subject":    input.Subject,
			"message":    input.Message,
		}
		for field, value := range required {
			if strings.TrimSpace(value) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in " + field})
				return
			}
		}
		if !strings.Contains(input.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email"})
			return
		}

		msg, err := messages.Append(models.ContactMessage{
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Email:     strings.TrimSpace(input.Email),
			Subject:   strings.TrimSpace(input.Subject),
			Message:   strings.TrimSpace(input.Message),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Thank you for your message! We will get back to you soon.",
			"id":      msg.ID,
		})
	}
}
