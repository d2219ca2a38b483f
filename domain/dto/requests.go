package dto

// UpdateQueryRequest is a partial edit; absent fields are left unchanged
type UpdateQueryRequest struct {
	Text       *string `json:"text"`
	StartDate  *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	ClearDates bool    `json:"clear_dates"`
}

type ToggleSelectionRequest struct {
	PeopleID int64 `json:"people_id" validate:"gt=0"`
}

// SearchRequest starts a new search. Without page or keep_page it goes to page 1.
type SearchRequest struct {
	Page     *int `json:"page" validate:"omitempty,min=1"`
	KeepPage bool `json:"keep_page"`
}

type SortRequest struct {
	ByDate bool `json:"by_date"`
}

type RenamePersonRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type MergePeopleRequest struct {
	SourceID int64 `json:"source_id" validate:"gt=0"`
	TargetID int64 `json:"target_id" validate:"gt=0"`
}

type LoadDatasetRequest struct {
	FolderPath string `json:"folder_path" validate:"required"`
}
