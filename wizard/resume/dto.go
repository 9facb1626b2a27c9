package resume

// GenerateRequest - Request to generate a tailored resume
type GenerateRequest struct {
	UserInfo        UserInfo `json:"userInfo" validate:"required"`
	CompanyInfo     string   `json:"companyInfo" validate:"required"`
	ResumeQuestions []string `json:"resumeQuestions" validate:"required,min=1,dive,required"`
}

// GenerateResponse - Raw generation text returned to the caller
type GenerateResponse struct {
	Data string `json:"data"`
}
