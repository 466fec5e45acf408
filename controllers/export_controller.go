package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

type exportReq struct {
	Format    string  `json:"format"`
	RangeFrom *string `json:"range_from,omitempty"`
	RangeTo   *string `json:"range_to,omitempty"`
}

/* ========== Export jobs ========== */

// CreateExport queues an export of all responses for a survey. The file is
// produced in the background; poll GetExport with the returned job_id.
func CreateExport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid survey ID"})
		return
	}

	var survey models.Survey
	err = config.DB.First(&survey, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch survey"})
		return
	}

	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" && req.Format != "xlsx" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "format must be csv or xlsx"})
		return
	}

	var fromPtr, toPtr *time.Time
	if req.RangeFrom != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeFrom); err == nil {
			fromPtr = &t
		}
	}
	if req.RangeTo != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeTo); err == nil {
			toPtr = &t
		}
	}

	job := models.ExportJob{
		JobID:     uuid.New().String(),
		SurveyID:  survey.ID,
		Format:    req.Format,
		Status:    "queued",
		RangeFrom: fromPtr,
		RangeTo:   toPtr,
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to queue export"})
		return
	}

	go processExportJob(job.JobID)

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data":    gin.H{"job_id": job.JobID, "status": "queued"},
	})
}

// GetExport streams the finished file, or reports job status while pending.
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")

	var job models.ExportJob
	err := config.DB.First(&job, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Export job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch export job"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"job_id": job.JobID,
			"status": job.Status,
			"error":  job.ErrorMsg,
		},
	})
}

/* ========== Background worker ========== */

// exportRow is one spreadsheet line: respondent demographics followed by
// one cell per question, in question order.
type exportRow struct {
	cells []string
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	header, rows, err := collectExportRows(job)
	if err != nil {
		failExportJob(&job, err)
		return
	}

	outDir := os.Getenv("EXPORT_DIR")
	if outDir == "" {
		outDir = "./exports"
	}
	os.MkdirAll(outDir, 0755)
	outPath := path.Join(outDir, fmt.Sprintf("survey_%d_%s.%s", job.SurveyID, job.JobID, job.Format))

	if job.Format == "xlsx" {
		err = writeXLSX(outPath, header, rows)
	} else {
		err = writeCSV(outPath, header, rows)
	}
	if err != nil {
		failExportJob(&job, err)
		return
	}

	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": outPath})
}

func failExportJob(job *models.ExportJob, err error) {
	log.Printf("export job %s: %v", job.JobID, err)
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

func collectExportRows(job models.ExportJob) ([]string, []exportRow, error) {
	var questions []models.SurveyQuestion
	if err := config.DB.
		Where("survey_id = ?", job.SurveyID).
		Order("section_id ASC, sort_order ASC, question_id ASC").
		Find(&questions).Error; err != nil {
		return nil, nil, err
	}

	header := []string{"response_id", "email", "first_name", "last_name", "graduation_year", "submitted_at"}
	for _, q := range questions {
		header = append(header, q.QuestionText)
	}

	q := config.DB.
		Preload("Alumni").
		Preload("QuestionResponses.Option").
		Where("survey_id = ?", job.SurveyID)
	if job.RangeFrom != nil {
		q = q.Where("response_date >= ?", job.RangeFrom)
	}
	if job.RangeTo != nil {
		q = q.Where("response_date <= ?", job.RangeTo)
	}

	var responses []models.FeedbackResponse
	if err := q.Order("response_date ASC").Find(&responses).Error; err != nil {
		return nil, nil, err
	}

	rows := make([]exportRow, 0, len(responses))
	for _, r := range responses {
		gradYear := ""
		if r.Alumni.GraduationYear != nil {
			gradYear = strconv.Itoa(*r.Alumni.GraduationYear)
		}
		cells := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Alumni.Email,
			r.Alumni.FirstName,
			r.Alumni.LastName,
			gradYear,
			r.ResponseDate.Format(time.RFC3339),
		}
		for _, question := range questions {
			cells = append(cells, answerCell(r.QuestionResponses, question.ID))
		}
		rows = append(rows, exportRow{cells: cells})
	}
	return header, rows, nil
}

// answerCell renders one question's answer. Option answers show the option
// text; "Others" picks also carry the free text the respondent typed.
func answerCell(responses []models.QuestionResponse, questionID uint) string {
	qr := findQuestionResponse(responses, questionID)
	if qr == nil {
		return ""
	}
	if qr.Option != nil {
		if qr.Option.IsOtherOption && qr.ResponseText != nil {
			return qr.Option.OptionText + ": " + *qr.ResponseText
		}
		return qr.Option.OptionText
	}
	if qr.ResponseText != nil {
		return *qr.ResponseText
	}
	return ""
}

func writeCSV(outPath string, header []string, rows []exportRow) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r.cells); err != nil {
			return err
		}
	}
	return nil
}

func writeXLSX(outPath string, header []string, rows []exportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Responses"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, r := range rows {
		for col, v := range r.cells {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(outPath)
}
