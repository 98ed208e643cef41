package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/models"
)

// CheckQuestionOwner loads the questionnaire from the :id param, rejects
// anything deleted or owned by someone else, and puts it into the context.
func CheckQuestionOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
			return
		}

		var q models.Questionnaire
		if e := config.DB.Where("id = ? AND is_deleted = false", id).First(&q).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Questionnaire not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Cannot load questionnaire"})
			return
		}

		if q.Author != u.Username {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not the owner of this questionnaire"})
			return
		}

		c.Set(CtxQuestion, q)
		c.Next()
	}
}
