package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/middleware"
	"github.com/surveyforge/question-server/models"
	"github.com/surveyforge/question-server/services"
)

func questionSvc() *services.QuestionService {
	return services.NewQuestionService(config.DB)
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet(middleware.CtxUser).(models.User)
}

func pageFromQuery(c *gin.Context) services.ListPage {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return services.ListPage{Page: page, PageSize: pageSize}
}

// POST /api/question
func CreateQuestion(c *gin.Context) {
	u := currentUser(c)

	q, err := questionSvc().Create(u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot create questionnaire"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": q.ID})
}

// GET /api/question/:id
func GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	q, err := questionSvc().FindOne(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot load questionnaire"})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Questionnaire not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// GET /api/question?keyword=&page=&pageSize=&isDeleted=&isStar=
func ListQuestions(c *gin.Context) {
	u := currentUser(c)

	filter := services.ListFilter{
		Author:    u.Username,
		Keyword:   c.Query("keyword"),
		IsDeleted: c.Query("isDeleted") == "true",
		IsStar:    c.Query("isStar") == "true",
	}

	svc := questionSvc()
	total, err := svc.Count(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot count questionnaires"})
		return
	}
	list, err := svc.FindAllList(filter, pageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot list questionnaires"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list, "total": total})
}

type updateQuestionReq struct {
	Title         *string               `json:"title"`
	Desc          *string               `json:"desc"`
	Js            *string               `json:"js"`
	Css           *string               `json:"css"`
	IsStar        *bool                 `json:"isStar"`
	IsPublished   *bool                 `json:"isPublished"`
	IsDeleted     *bool                 `json:"isDeleted"`
	ComponentList *models.ComponentList `json:"componentList"`
}

// PATCH /api/question/:id
func UpdateQuestion(c *gin.Context) {
	u := currentUser(c)
	q := c.MustGet(middleware.CtxQuestion).(models.Questionnaire)

	var req updateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	patch := services.UpdatePatch{
		Title:         req.Title,
		Desc:          req.Desc,
		Js:            req.Js,
		Css:           req.Css,
		IsStar:        req.IsStar,
		IsPublished:   req.IsPublished,
		IsDeleted:     req.IsDeleted,
		ComponentList: req.ComponentList,
	}
	if err := questionSvc().Update(q.ID, u.Username, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/question/:id — soft delete only.
func DeleteQuestion(c *gin.Context) {
	u := currentUser(c)
	q := c.MustGet(middleware.CtxQuestion).(models.Questionnaire)

	if err := questionSvc().Delete(q.ID, u.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type deleteManyReq struct {
	IDs []uint `json:"ids" binding:"required,min=1,dive,required"`
}

// DELETE /api/question
func DeleteManyQuestions(c *gin.Context) {
	u := currentUser(c)

	var req deleteManyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	if err := questionSvc().DeleteMany(req.IDs, u.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /api/question/duplicate/:id
func DuplicateQuestion(c *gin.Context) {
	u := currentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	clone, err := questionSvc().Duplicate(uint(id), u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Duplicate failed"})
		return
	}
	if clone == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Questionnaire not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": clone.ID})
}
