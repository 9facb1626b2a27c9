package session

import (
	"net/http"

	"github.com/jinhyuk-lee/resumate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SESSION")

var (
	CodeSessionNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Session not found")
	CodeInvalidStep          = ErrRegistry.Register("INVALID_STEP", errx.TypeValidation, http.StatusBadRequest, "Invalid wizard step")
	CodeInvalidData          = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "필수 항목을 입력해주세요.")
	CodePrerequisiteMissing  = ErrRegistry.Register("PREREQ_MISSING", errx.TypeBusiness, http.StatusUnprocessableEntity, "Prerequisite step data is missing")
	CodeJobNotSelected       = ErrRegistry.Register("JOB_NOT_SELECTED", errx.TypeBusiness, http.StatusUnprocessableEntity, "지원 직무를 먼저 선택해주세요.")
	CodeInvalidJobSelection  = ErrRegistry.Register("INVALID_JOB_SELECTION", errx.TypeValidation, http.StatusBadRequest, "선택한 직무를 찾을 수 없습니다.")
	CodeStoreFailure         = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to access session store")
	CodeResumeNotReady       = ErrRegistry.Register("RESUME_NOT_READY", errx.TypeBusiness, http.StatusUnprocessableEntity, "이력서가 아직 생성되지 않았습니다.")
	CodeBackwardOnly         = ErrRegistry.Register("BACKWARD_ONLY", errx.TypeValidation, http.StatusBadRequest, "Only backward navigation is allowed")
	CodeResearchNotAvailable = ErrRegistry.Register("RESEARCH_NOT_AVAILABLE", errx.TypeBusiness, http.StatusUnprocessableEntity, "기업 정보가 아직 조사되지 않았습니다.")
)

func ErrSessionNotFound() *errx.Error      { return ErrRegistry.New(CodeSessionNotFound) }
func ErrInvalidStep() *errx.Error          { return ErrRegistry.New(CodeInvalidStep) }
func ErrInvalidData() *errx.Error          { return ErrRegistry.New(CodeInvalidData) }
func ErrPrerequisiteMissing() *errx.Error  { return ErrRegistry.New(CodePrerequisiteMissing) }
func ErrJobNotSelected() *errx.Error       { return ErrRegistry.New(CodeJobNotSelected) }
func ErrInvalidJobSelection() *errx.Error  { return ErrRegistry.New(CodeInvalidJobSelection) }
func ErrStoreFailure() *errx.Error         { return ErrRegistry.New(CodeStoreFailure) }
func ErrResumeNotReady() *errx.Error       { return ErrRegistry.New(CodeResumeNotReady) }
func ErrBackwardOnly() *errx.Error         { return ErrRegistry.New(CodeBackwardOnly) }
func ErrResearchNotAvailable() *errx.Error { return ErrRegistry.New(CodeResearchNotAvailable) }
