package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

func NewFeedbackHandler(protected *gin.RouterGroup, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}

	feedback := protected.Group("/feedback")
	{
		feedback.POST("", middleware.RequireRoles(domain.RoleEmployer), handler.CreateFeedback)
		feedback.GET("/jobseeker/:id", handler.GetForJobSeeker)
		feedback.PUT("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.UpdateFeedback)
		feedback.DELETE("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.DeleteFeedback)
	}
}

type CreateFeedbackRequest struct {
	JobSeekerID  string `json:"job_seeker_id" binding:"required"`
	FeedbackText string `json:"feedback_text" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
}

// CreateFeedback godoc
// @Summary      Leave Feedback
// @Description  Rate a job seeker. One feedback per employer per job seeker.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        feedback  body  CreateFeedbackRequest  true  "Feedback Details"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	fb := &domain.Feedback{
		JobSeekerID:  req.JobSeekerID,
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
	}

	created, err := h.feedbackUC.CreateFeedback(c.Request.Context(), middleware.CurrentUser(c), fb)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Feedback submitted", created)
}

// GetForJobSeeker godoc
// @Summary      Job Seeker Feedback
// @Description  All feedback left for a job seeker, newest first
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job Seeker ID"
// @Success      200  {object}  response.Response
// @Router       /feedback/jobseeker/{id} [get]
func (h *FeedbackHandler) GetForJobSeeker(c *gin.Context) {
	feedbacks, err := h.feedbackUC.GetFeedbackForJobSeeker(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Feedback retrieved", feedbacks)
}

// UpdateFeedback godoc
// @Summary      Update Feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                        true  "Feedback ID"
// @Param        update  body  domain.FeedbackUpdateRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /feedback/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	var req domain.FeedbackUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	fb, err := h.feedbackUC.UpdateFeedback(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Feedback updated", fb)
}

// DeleteFeedback godoc
// @Summary      Delete Feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Feedback ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	if err := h.feedbackUC.DeleteFeedback(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Feedback deleted", nil)
}
