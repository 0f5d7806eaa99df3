package v1

import (
	"io"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// 5 MB cap on uploaded files
const maxUploadBytes = 5 << 20

type UserHandler struct {
	userUC domain.UserUsecase
	store  *storage.LocalStore
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, store *storage.LocalStore) {
	handler := &UserHandler{userUC: userUC, store: store}

	users := protected.Group("/users")
	{
		users.GET("", middleware.RequireRoles(domain.RoleAdmin), handler.ListUsers)
		users.PUT("/:id", handler.UpdateUser)
		users.POST("/me/deletion-request", handler.RequestDeletion)
		users.POST("/:id/approve-deletion", middleware.RequireRoles(domain.RoleAdmin), handler.ApproveDeletion)
		users.POST("/me/profile-pic", handler.UploadProfilePic)
		users.POST("/me/resume", middleware.RequireRoles(domain.RoleJobSeeker), handler.UploadResume)
	}
}

// ListUsers godoc
// @Summary      List Users
// @Description  Admin view of active and soft-deleted accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	listing, err := h.userUC.ListUsers(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", listing)
}

// UpdateUser godoc
// @Summary      Update User
// @Description  Update a user profile. Admins can update anyone; users only themselves.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                    true  "User ID"
// @Param        update  body  domain.UserUpdateRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req domain.UserUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.UpdateUser(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// RequestDeletion godoc
// @Summary      Request Account Deletion
// @Description  Flag the current account for admin-approved erasure
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /users/me/deletion-request [post]
func (h *UserHandler) RequestDeletion(c *gin.Context) {
	if err := h.userUC.RequestDeletion(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deletion requested. An admin will review your request.", nil)
}

// ApproveDeletion godoc
// @Summary      Approve Account Deletion
// @Description  Permanently erase an account that requested deletion
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/approve-deletion [post]
func (h *UserHandler) ApproveDeletion(c *gin.Context) {
	if err := h.userUC.ApproveDeletion(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account permanently deleted", nil)
}

// UploadProfilePic godoc
// @Summary      Upload Profile Picture
// @Description  Store a downscaled profile picture for the current user
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/me/profile-pic [post]
func (h *UserHandler) UploadProfilePic(c *gin.Context) {
	data, name, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	path, err := h.store.SaveImage(data, name)
	if err != nil {
		c.Error(err)
		return
	}

	req := &domain.UserUpdateRequest{ProfilePic: &path}
	actor := middleware.CurrentUser(c)
	user, err := h.userUC.UpdateUser(c.Request.Context(), actor, actor.ID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile picture uploaded", user)
}

// UploadResume godoc
// @Summary      Upload Resume
// @Description  Store a resume document (pdf, doc, docx) for the current job seeker
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Document file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/me/resume [post]
func (h *UserHandler) UploadResume(c *gin.Context) {
	data, name, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	path, err := h.store.SaveDocument(data, name)
	if err != nil {
		c.Error(err)
		return
	}

	req := &domain.UserUpdateRequest{Resume: &path}
	actor := middleware.CurrentUser(c)
	user, err := h.userUC.UpdateUser(c.Request.Context(), actor, actor.ID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume uploaded", user)
}

func readUpload(c *gin.Context) ([]byte, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", apperror.BadRequest("A file field is required")
	}
	if file.Size > maxUploadBytes {
		return nil, "", apperror.BadRequest("File exceeds the 5 MB limit")
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return data, file.Filename, nil
}
