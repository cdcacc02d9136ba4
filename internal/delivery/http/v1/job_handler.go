package v1

import (
	"errors"
	"io"
	"net/http"
	"recruitai-backend/internal/delivery/http/middleware"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/security"
	"recruitai-backend/pkg/validation"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC          domain.JobUsecase
	applicationUC  domain.ApplicationUsecase
	maxResumeBytes int64
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase, maxResumeBytes int64, uploadLimit gin.HandlerFunc) {
	handler := &JobHandler{
		jobUC:          jobUC,
		applicationUC:  applicationUC,
		maxResumeBytes: maxResumeBytes,
	}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", middleware.RequireView(domain.ViewPostJobs), handler.Create)
		jobs.POST("/:id/apply", middleware.RequireView(domain.ViewJobs), uploadLimit, handler.Apply)
	}
}

type CreateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Department   string `json:"department"`
	Requirements string `json:"requirements"`
	Description  string `json:"description"`
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a new job posting (HR/Recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	job, err := h.jobUC.CreateJobPosting(c.Request.Context(),
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Company),
		req.Department,
		req.Requirements,
		req.Description,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Get all job postings, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobPostings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJobDetails godoc
// @Summary      Get job details
// @Description  Get a single job posting by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobPosting(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details retrieved", job)
}

// ApplyJob godoc
// @Summary      Apply for a job
// @Description  Submit a resume for a job posting (Candidate only)
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      int   true  "Job ID"
// @Param        resume  formData  file  true  "Resume (PDF)"
// @Success      201     {object}  response.Response{data=domain.Application}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	// Multipart framing needs headroom above the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResumeBytes+1<<20)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.BadRequest("Resume exceeds the maximum allowed size"))
			return
		}
		c.Error(apperror.BadRequest("Please upload your resume"))
		return
	}
	if fileHeader.Size > h.maxResumeBytes {
		c.Error(apperror.BadRequest("Resume exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded resume"))
		return
	}
	defer file.Close()

	resume, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded resume"))
		return
	}

	if err := security.ValidateResume(fileHeader.Filename, resume); err != nil {
		c.Error(apperror.Wrap(apperror.BadRequest("Please upload your resume as a PDF"), err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.SubmitApplication(c.Request.Context(), userID, jobID, resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully!", app)
}
