package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/auth"
)

const accountContextKey = "staff_account"

// AccountMiddleware loads the full staff account (including gym assignments)
// for the authenticated staff user and stores it on the request context.
func AccountMiddleware(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, ok := auth.GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		acct, err := service.GetByID(c.Request.Context(), staffID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Staff account not found"})
			c.Abort()
			return
		}

		c.Set(accountContextKey, *acct)
		c.Next()
	}
}

func AccountFromContext(c *gin.Context) (Account, bool) {
	value, exists := c.Get(accountContextKey)
	if !exists {
		return Account{}, false
	}

	acct, ok := value.(Account)
	return acct, ok
}
