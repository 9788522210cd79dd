package execution

import (
	"errors"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreateLevelRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Pours     []Pour `json:"pours,omitempty"`
}

func (r *CreateLevelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if err := validatePours(r.Pours); err != nil {
		errs = append(errs, validator.ValidationError{Field: "pours", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLevelRequest struct {
	ID    string  `json:"-"`
	Name  *string `json:"name,omitempty"`
	Pours *[]Pour `json:"pours,omitempty"`
}

func (r *UpdateLevelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Pours != nil {
		if err := validatePours(*r.Pours); err != nil {
			errs = append(errs, validator.ValidationError{Field: "pours", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePours(pours []Pour) error {
	for _, p := range pours {
		if p.Date != nil && *p.Date != "" {
			if _, ok := validator.IsValidDate(*p.Date); !ok {
				return errors.New("pour dates must be in YYYY-MM-DD format")
			}
		}
	}
	return nil
}

type LevelResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Pours     []Pour `json:"pours"`
}

func ToResponse(l Level) LevelResponse {
	pours := l.Pours
	if pours == nil {
		pours = []Pour{}
	}
	return LevelResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Name:      l.Name,
		Pours:     pours,
	}
}
