package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
)

// saveProfileImage stores an optional uploaded "profile_image" form file and
// returns its relative path. On failure it writes the error response and
// returns ok=false; an absent file is not a failure.
func saveProfileImage(c *gin.Context, store domain.ImageStore) (string, bool) {
	fh, err := c.FormFile("profile_image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", true
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile image"})
		return "", false
	}

	f, err := fh.Open()
	if err != nil {
		log.Printf("image open failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return "", false
	}
	defer f.Close()

	path, err := store.Save(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImageType):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file type"})
		case errors.Is(err, domain.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"message": "File too large"})
		default:
			log.Printf("image save failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return "", false
	}
	return path, true
}
