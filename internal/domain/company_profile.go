package domain

import "context"

// Company status constants
const (
	CompanyStatusActive   = "Active"
	CompanyStatusInactive = "Inactive"
)

// CompanySizes is the closed set of size buckets.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "501+"}

// CompanyProfile is created and maintained by admins; employers reference it
// through User.CompanyID.
type CompanyProfile struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	CompanyLogo *string `json:"company_logo,omitempty"`
	Industry    string  `json:"industry"`
	CompanySize string  `json:"company_size"`
	Location    string  `json:"location"`
	Website     *string `json:"website,omitempty"`
	About       *string `json:"about,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Status      string  `json:"status"`

	Audit
}

type CompanyUpdateRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"company_size,omitempty"`
	Location    *string `json:"location,omitempty"`
	Website     *string `json:"website,omitempty"`
	About       *string `json:"about,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Status      *string `json:"status,omitempty"`
	CompanyLogo *string `json:"-"`
}

type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *CompanyProfile) error
	GetByID(ctx context.Context, id string) (*CompanyProfile, error)
	GetByName(ctx context.Context, name string) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) error
}

type CompanyProfileUsecase interface {
	RegisterCompany(ctx context.Context, actor *User, profile *CompanyProfile) (*CompanyProfile, error)
	UpdateCompany(ctx context.Context, actor *User, id string, req *CompanyUpdateRequest) (*CompanyProfile, error)
	GetCompany(ctx context.Context, id string) (*CompanyProfile, error)
}
