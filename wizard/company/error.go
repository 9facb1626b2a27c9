package company

import (
	"net/http"

	"github.com/jinhyuk-lee/resumate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("COMPANY")

var (
	CodeMissingCompany = ErrRegistry.Register("MISSING_COMPANY", errx.TypeValidation, http.StatusBadRequest, "회사명이 필요합니다.")
)

func ErrMissingCompany() *errx.Error {
	return ErrRegistry.New(CodeMissingCompany)
}
