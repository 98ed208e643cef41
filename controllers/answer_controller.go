package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/models"
	"github.com/surveyforge/question-server/services"
)

func answerSvc() *services.AnswerService {
	return services.NewAnswerService(config.DB)
}

type answerEntryReq struct {
	ComponentFeID string   `json:"componentFeId" binding:"required"`
	Value         []string `json:"value"`
}

type submitAnswerReq struct {
	QuestionID uint             `json:"questionId" binding:"required"`
	AnswerList []answerEntryReq `json:"answerList"`
}

// POST /api/answer — public submission endpoint. The answer list is stored
// verbatim; entries referencing components the schema no longer has are
// accepted and handled when the report is read.
func SubmitAnswer(c *gin.Context) {
	var req submitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	list := make(models.AnswerList, 0, len(req.AnswerList))
	for _, e := range req.AnswerList {
		value := e.Value
		if value == nil {
			value = []string{}
		}
		list = append(list, models.AnswerEntry{
			ComponentFeID: e.ComponentFeID,
			Value:         value,
		})
	}

	rec := &models.AnswerRecord{
		QuestionID: req.QuestionID,
		AnswerList: list,
	}
	if err := answerSvc().Create(rec); err != nil {
		if errors.Is(err, services.ErrMissingQuestionID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "questionId is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot save answer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": rec.ID})
}
