package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	protected.POST("/jobs/:id/apply", middleware.RequireRoles(domain.RoleJobSeeker), handler.SubmitApplication)

	apps := protected.Group("/applications")
	{
		apps.GET("", middleware.RequireRoles(domain.RoleEmployer), handler.ListApplications)
		apps.GET("/filter", middleware.RequireRoles(domain.RoleEmployer), handler.FilterApplications)
		apps.PATCH("/:id/status", middleware.RequireRoles(domain.RoleEmployer), handler.UpdateStatus)
		apps.POST("/:id/close-if-full", middleware.RequireRoles(domain.RoleEmployer), handler.CloseIfFull)
		apps.POST("/:id/interview", middleware.RequireRoles(domain.RoleEmployer), handler.ScheduleInterview)
		apps.DELETE("/:id", handler.DeleteApplication)
	}
}

// SubmitApplication godoc
// @Summary      Apply for Job
// @Description  Submit an application for an open posting
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	app, err := h.appUC.SubmitApplication(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListApplications godoc
// @Summary      List Applications
// @Description  Applications against the employer's postings, newest first
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.appUC.ListApplications(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// FilterApplications godoc
// @Summary      Filter Applications
// @Description  Narrow applications by minimum experience, skills and status
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        min_experience  query  int     false  "Minimum years of experience"
// @Param        skills          query  string  false  "Comma-separated skills, any-overlap match"
// @Param        status          query  string  false  "Application status"
// @Success      200  {object}  response.Response
// @Router       /applications/filter [get]
func (h *ApplicationHandler) FilterApplications(c *gin.Context) {
	var filter domain.ApplicationFilter

	if raw := c.Query("min_experience"); raw != "" {
		minExp, err := strconv.Atoi(raw)
		if err != nil || minExp < 0 {
			c.Error(apperror.BadRequest("min_experience must be a non-negative integer"))
			return
		}
		filter.MinExperience = &minExp
	}
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ApplicationStatus(raw)
		filter.Status = &status
	}

	apps, err := h.appUC.FilterApplications(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

type UpdateApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status" binding:"required,appstatus"`
}

// UpdateStatus godoc
// @Summary      Update Application Status
// @Description  Move an application through its lifecycle. Accepting consumes an applicant slot.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                          true  "Application ID"
// @Param        status  body  UpdateApplicationStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateApplicationStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.UpdateApplicationStatus(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// CloseIfFull godoc
// @Summary      Close Application If Job Full
// @Description  Reject the application when its job has exhausted the applicant cap
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/{id}/close-if-full [post]
func (h *ApplicationHandler) CloseIfFull(c *gin.Context) {
	outcome, err := h.appUC.CloseApplicationIfFull(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Job has open slots; application unchanged"
	if outcome.Closed {
		msg = "Job is full; application rejected"
	}
	response.Success(c, http.StatusOK, msg, outcome)
}

// ScheduleInterview godoc
// @Summary      Schedule Interview
// @Description  Create the one interview invitation for an accepted application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string                           true  "Application ID"
// @Param        interview  body  domain.ScheduleInterviewRequest  true  "Interview Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/interview [post]
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	var req domain.ScheduleInterviewRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	invite, err := h.appUC.ScheduleInterview(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", invite)
}

// DeleteApplication godoc
// @Summary      Delete Application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.appUC.DeleteApplication(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}
