package response

import (
	"log"
	"net/http"

	"anoa.com/greencampus/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ResponseError writes the standard error body for a failed request,
// with the status derived from the error's place in the app taxonomy.
// Unexpected errors are logged with the route that produced them;
// expected ones (bad dates, no active quiz, duplicate usernames) are not.
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Printf("internal error on %s: %v", c.FullPath(), err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
