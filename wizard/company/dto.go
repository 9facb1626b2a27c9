package company

// ResearchRequest - Request to research a company's job postings
type ResearchRequest struct {
	Company string `json:"company" validate:"required"`
}

// ResearchResponse - Raw research text returned to the caller
type ResearchResponse struct {
	Data string `json:"data"`
}
