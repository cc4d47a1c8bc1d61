package dto

// CreateHolidayRequest is the holiday editor's create payload. Date is the
// calendar day in YYYY-MM-DD form; time of day is irrelevant.
type CreateHolidayRequest struct {
	Name        string  `json:"name" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateHolidayRequest is the edit payload. The date of an existing holiday
// is immutable; changing it means delete and recreate.
type UpdateHolidayRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
