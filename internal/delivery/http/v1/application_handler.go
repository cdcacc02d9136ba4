package v1

import (
	"fmt"
	"net/http"
	"recruitai-backend/internal/delivery/http/middleware"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/validation"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the recruiter application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications", middleware.RequireView(domain.ViewApplications))
	{
		applications.GET("", handler.List)
		applications.GET("/export", handler.Export)
		applications.GET("/:id/resume", handler.DownloadResume)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}
}

// ApplicationResponse is an application row as shown to recruiters.
// Resume bytes are only served by the download route.
type ApplicationResponse struct {
	domain.ApplicationView
	Label      string `json:"label"`
	ResumeSize int    `json:"resume_size"`
}

func toApplicationResponse(v domain.ApplicationView) ApplicationResponse {
	return ApplicationResponse{
		ApplicationView: v,
		Label:           v.Label(),
		ResumeSize:      len(v.Resume),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,valid_decision"`
}

// ListApplications godoc
// @Summary      List applications
// @Description  Every application with candidate username and job title, newest first (HR/Recruiter only)
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]ApplicationResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	views, err := h.applicationUC.ListApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	result := make([]ApplicationResponse, 0, len(views))
	for _, v := range views {
		result = append(result, toApplicationResponse(v))
	}

	response.Success(c, http.StatusOK, "Applications retrieved", result)
}

// DownloadResume godoc
// @Summary      Download resume
// @Description  Download the resume attached to an application
// @Tags         applications
// @Produce      application/pdf
// @Param        id   path      int  true  "Application ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/resume [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, err := parseApplicationID(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if len(app.Resume) == 0 {
		c.Error(apperror.NotFound("No resume attached to this application"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resume_%d.pdf", app.ID))
	c.Data(http.StatusOK, "application/pdf", app.Resume)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Mark an application as Hired or Not Hired (HR/Recruiter only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := parseApplicationID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	status := domain.ApplicationStatus(req.Status)
	if err := h.applicationUC.UpdateStatus(c.Request.Context(), id, status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate marked as "+req.Status, gin.H{
		"id":     id,
		"status": status,
	})
}

// ExportApplications godoc
// @Summary      Export applications
// @Description  Download every application as an Excel workbook (HR/Recruiter only)
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      403  {object}  response.Response
// @Router       /applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Export(c *gin.Context) {
	data, filename, err := h.applicationUC.ExportApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func parseApplicationID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid application ID")
	}
	return id, nil
}
