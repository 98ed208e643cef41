package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/middleware"
	"github.com/surveyforge/question-server/models"
	"github.com/surveyforge/question-server/services"
)

type exportReq struct {
	Format string `json:"format"`
}

// POST /api/question/:id/export — queues a CSV export of the decoded answer
// report. Columns follow the component order of the schema at export time.
func CreateExport(c *gin.Context) {
	q := c.MustGet(middleware.CtxQuestion).(models.Questionnaire)

	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported format"})
		return
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:      jobID,
		QuestionID: q.ID,
		Format:     req.Format,
		Status:     "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot queue export"})
		return
	}

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/exports/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot load job"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func failExportJob(job *models.ExportJob, err error) {
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	qSvc := services.NewQuestionService(config.DB)
	aSvc := services.NewAnswerService(config.DB)

	q, err := qSvc.FindOne(job.QuestionID)
	if err != nil {
		failExportJob(&job, err)
		return
	}
	if q == nil {
		failExportJob(&job, fmt.Errorf("questionnaire %d not found", job.QuestionID))
		return
	}

	total, err := aSvc.Count(job.QuestionID)
	if err != nil {
		failExportJob(&job, err)
		return
	}

	var records []models.AnswerRecord
	if total > 0 {
		records, err = aSvc.FindAll(job.QuestionID, services.ListPage{Page: 1, PageSize: int(total)})
		if err != nil {
			failExportJob(&job, err)
			return
		}
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)
	outPath := path.Join(outDir, fmt.Sprintf("export_%s.csv", job.JobID))

	f, err := os.Create(outPath)
	if err != nil {
		failExportJob(&job, err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"answer_id"}
	for _, comp := range q.ComponentList {
		header = append(header, comp.Title)
	}
	w.Write(header)

	for _, rec := range records {
		// Resolve into a fe_id -> text map first, then emit in schema order.
		cells := map[string]string{}
		for _, entry := range rec.AnswerList {
			comp := q.FindComponent(entry.ComponentFeID)
			if comp == nil {
				continue
			}
			cells[comp.FeID] = services.ResolveText(comp, entry.Value)
		}
		row := []string{fmt.Sprintf("%d", rec.ID)}
		for _, comp := range q.ComponentList {
			row = append(row, cells[comp.FeID])
		}
		w.Write(row)
	}

	fp := outPath
	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": fp})
}
