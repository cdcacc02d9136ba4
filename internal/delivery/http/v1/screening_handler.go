package v1

import (
	"net/http"
	"recruitai-backend/internal/delivery/http/middleware"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ScreeningHandler struct {
	screeningUC domain.ScreeningUsecase
}

func NewScreeningHandler(r *gin.RouterGroup, screeningUC domain.ScreeningUsecase) {
	handler := &ScreeningHandler{screeningUC: screeningUC}

	r.POST("/applications/:id/screening", middleware.RequireView(domain.ViewAIScreening), handler.Screen)
}

// ScreenApplication godoc
// @Summary      Screen an application
// @Description  Score a candidate's resume against the job requirements
// @Tags         screening
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.ScreeningReport}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/screening [post]
// @Security     BearerAuth
func (h *ScreeningHandler) Screen(c *gin.Context) {
	id, err := parseApplicationID(c)
	if err != nil {
		c.Error(err)
		return
	}

	report, err := h.screeningUC.ScreenApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Screening complete", report)
}
