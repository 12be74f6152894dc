package models

const OfficerStatusActive = "active"

// Officer - сотрудник, для которого строится дашборд
type Officer struct {
	ID     string `json:"id"`
	Badge  string `json:"badge"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

type OfficerInput struct {
	Badge string `json:"badge" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
}
