package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/services"
)

func statSvc() *services.StatService {
	return services.NewStatService(
		services.NewQuestionService(config.DB),
		services.NewAnswerService(config.DB),
	)
}

// GET /api/stat/:id?page=&pageSize=
// A malformed or unknown id is not an error here: the report degrades to
// {list: [], total: 0} so a deleted questionnaire still renders an empty view.
func GetStatList(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	list, total, err := statSvc().GetQuestionStatListAndCount(uint(id), pageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot build answer report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "total": total})
}

// GET /api/stat/:id/:componentFeId
func GetComponentStat(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	feID := c.Param("componentFeId")

	stat, err := statSvc().GetComponentStat(uint(id), feID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot build component stat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stat": stat})
}
