package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyProfileUsecase
	store     *storage.LocalStore
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyProfileUsecase, store *storage.LocalStore) {
	handler := &CompanyHandler{companyUC: companyUC, store: store}

	companies := protected.Group("/companies")
	{
		companies.POST("", middleware.RequireRoles(domain.RoleAdmin), handler.RegisterCompany)
		companies.GET("/:id", handler.GetCompany)
		companies.PUT("/:id", middleware.RequireRoles(domain.RoleAdmin), handler.UpdateCompany)
		companies.POST("/:id/logo", middleware.RequireRoles(domain.RoleAdmin), handler.UploadLogo)
	}
}

type RegisterCompanyRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Industry    string  `json:"industry" binding:"required"`
	CompanySize string  `json:"company_size" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Website     *string `json:"website,omitempty"`
	About       *string `json:"about,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// RegisterCompany godoc
// @Summary      Register Company
// @Description  Create a company profile that employers attach to
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company  body  RegisterCompanyRequest  true  "Company Details"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies [post]
func (h *CompanyHandler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile := &domain.CompanyProfile{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Location:    req.Location,
		Website:     req.Website,
		About:       req.About,
		FoundedYear: req.FoundedYear,
		Status:      req.Status,
	}

	created, err := h.companyUC.RegisterCompany(c.Request.Context(), middleware.CurrentUser(c), profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company registered", created)
}

// GetCompany godoc
// @Summary      Get Company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	profile, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", profile)
}

// UpdateCompany godoc
// @Summary      Update Company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                       true  "Company ID"
// @Param        update  body  domain.CompanyUpdateRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req domain.CompanyUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.companyUC.UpdateCompany(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", profile)
}

// UploadLogo godoc
// @Summary      Upload Company Logo
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Company ID"
// @Param        file  formData  file    true  "Image file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /companies/{id}/logo [post]
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
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

	req := &domain.CompanyUpdateRequest{CompanyLogo: &path}
	profile, err := h.companyUC.UpdateCompany(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company logo uploaded", profile)
}
