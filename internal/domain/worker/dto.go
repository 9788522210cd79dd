package worker

import (
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	ProjectID   string  `json:"project_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Designation *string `json:"designation,omitempty"`
	JoinDate    *string `json:"join_date,omitempty"`
	ExitDate    *string `json:"exit_date,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidWorkerCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match the W-NNN format"})
	}
	if r.JoinDate != nil && *r.JoinDate != "" {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.ExitDate != nil && *r.ExitDate != "" {
		if _, ok := validator.IsValidDate(*r.ExitDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID          string  `json:"-"`
	ProjectID   *string `json:"project_id,omitempty"`
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Designation *string `json:"designation,omitempty"`
	JoinDate    *string `json:"join_date,omitempty"`
	ExitDate    *string `json:"exit_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Code != nil && !validator.IsValidWorkerCode(*r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match the W-NNN format"})
	}
	if r.ExitDate != nil && *r.ExitDate != "" {
		if _, ok := validator.IsValidDate(*r.ExitDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Designation *string `json:"designation,omitempty"`
	JoinDate    *string `json:"join_date,omitempty"`
	ExitDate    *string `json:"exit_date,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:          w.ID,
		ProjectID:   w.ProjectID,
		Code:        w.Code,
		Name:        w.Name,
		Designation: w.Designation,
		JoinDate:    w.JoinDate,
		ExitDate:    w.ExitDate,
		IsActive:    w.IsActive,
	}
}
