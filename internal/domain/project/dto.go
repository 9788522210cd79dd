package project

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusPlanning),
	string(StatusInProgress),
	string(StatusCompleted),
	string(StatusOnHold),
}

type CreateProjectRequest struct {
	Name                 string          `json:"name"`
	ClientName           *string         `json:"client_name,omitempty"`
	Location             *string         `json:"location,omitempty"`
	StartDate            *string         `json:"start_date,omitempty"`
	CompletionDate       *string         `json:"completion_date,omitempty"`
	Budget               decimal.Decimal `json:"budget"`
	Spent                decimal.Decimal `json:"spent"`
	CompletionPercentage int             `json:"completion_percentage"`
	Status               string          `json:"status,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: Planning, In Progress, Completed, On Hold"})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.CompletionDate != nil && *r.CompletionDate != "" {
		if _, ok := validator.IsValidDate(*r.CompletionDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.CompletionPercentage < 0 || r.CompletionPercentage > 100 {
		errs = append(errs, validator.ValidationError{Field: "completion_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID                   string           `json:"-"`
	Name                 *string          `json:"name,omitempty"`
	ClientName           *string          `json:"client_name,omitempty"`
	Location             *string          `json:"location,omitempty"`
	StartDate            *string          `json:"start_date,omitempty"`
	CompletionDate       *string          `json:"completion_date,omitempty"`
	Budget               *decimal.Decimal `json:"budget,omitempty"`
	Spent                *decimal.Decimal `json:"spent,omitempty"`
	CompletionPercentage *int             `json:"completion_percentage,omitempty"`
	Status               *string          `json:"status,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: Planning, In Progress, Completed, On Hold"})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.CompletionDate != nil && *r.CompletionDate != "" {
		if _, ok := validator.IsValidDate(*r.CompletionDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.CompletionPercentage != nil && (*r.CompletionPercentage < 0 || *r.CompletionPercentage > 100) {
		errs = append(errs, validator.ValidationError{Field: "completion_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	ClientName           *string         `json:"client_name,omitempty"`
	Location             *string         `json:"location,omitempty"`
	StartDate            *string         `json:"start_date,omitempty"`
	CompletionDate       *string         `json:"completion_date,omitempty"`
	Budget               decimal.Decimal `json:"budget"`
	Spent                decimal.Decimal `json:"spent"`
	CompletionPercentage int             `json:"completion_percentage"`
	Status               string          `json:"status"`
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		ClientName:           p.ClientName,
		Location:             p.Location,
		StartDate:            p.StartDate,
		CompletionDate:       p.CompletionDate,
		Budget:               p.Budget,
		Spent:                p.Spent,
		CompletionPercentage: p.CompletionPercentage,
		Status:               string(p.Status),
	}
}
