package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.ListJobs)
		jobs.GET("/search", handler.SearchJobs)
		jobs.POST("", middleware.RequireRoles(domain.RoleEmployer), handler.CreateJob)
		jobs.PUT("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.UpdateJob)
		jobs.POST("/:id/approve", middleware.RequireRoles(domain.RoleAdmin), handler.ApproveJob)
		jobs.POST("/:id/reject", middleware.RequireRoles(domain.RoleAdmin), handler.RejectJob)
		jobs.POST("/:id/close", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.CloseJob)
		jobs.DELETE("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.DeleteJob)
	}
}

type CreateJobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	Industry           string   `json:"industry" binding:"required"`
	ExperienceLevel    string   `json:"experience_level" binding:"required,oneof=Entry Mid Senior"`
	SalaryRange        *string  `json:"salary_range,omitempty"`
	RequiredSkills     []string `json:"required_skills" binding:"required,min=1"`
	RequiredExperience int      `json:"required_experience" binding:"min=0"`
	MaxApplicants      int      `json:"max_applicants" binding:"min=0"`
}

// CreateJob godoc
// @Summary      Post Job
// @Description  Create a job posting. New postings await admin approval.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body  CreateJobRequest  true  "Job Details"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	job := &domain.Job{
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Industry:           req.Industry,
		ExperienceLevel:    req.ExperienceLevel,
		SalaryRange:        req.SalaryRange,
		RequiredSkills:     req.RequiredSkills,
		RequiredExperience: req.RequiredExperience,
		MaxApplicants:      req.MaxApplicants,
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), middleware.CurrentUser(c), job)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted. Awaiting admin approval.", created)
}

// ListJobs godoc
// @Summary      List Jobs
// @Description  All postings with employer and company info, newest first
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// SearchJobs godoc
// @Summary      Search Jobs
// @Description  Approved postings filtered by location, industry and experience level
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        location          query  string  false  "Partial location match"
// @Param        industry          query  string  false  "Partial industry match"
// @Param        experience_level  query  string  false  "Exact experience level"
// @Success      200  {object}  response.Response
// @Router       /jobs/search [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	filter := domain.JobSearchFilter{
		Location:        c.Query("location"),
		Industry:        c.Query("industry"),
		ExperienceLevel: c.Query("experience_level"),
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// UpdateJob godoc
// @Summary      Update Job
// @Description  Edit a posting you own. Closed and rejected postings are immutable.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                   true  "Job ID"
// @Param        update  body  domain.JobUpdateRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req domain.JobUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// ApproveJob godoc
// @Summary      Approve Job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/approve [post]
func (h *JobHandler) ApproveJob(c *gin.Context) {
	if err := h.jobUC.ApproveJob(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job approved", nil)
}

// RejectJob godoc
// @Summary      Reject Job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/reject [post]
func (h *JobHandler) RejectJob(c *gin.Context) {
	if err := h.jobUC.RejectJob(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job rejected", nil)
}

// CloseJob godoc
// @Summary      Close Job
// @Description  Stop a posting from accepting applications
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/close [post]
func (h *JobHandler) CloseJob(c *gin.Context) {
	if err := h.jobUC.CloseJob(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job closed", nil)
}

// DeleteJob godoc
// @Summary      Delete Job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
