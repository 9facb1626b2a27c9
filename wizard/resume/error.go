package resume

import (
	"net/http"

	"github.com/jinhyuk-lee/resumate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeMissingInput = ErrRegistry.Register("MISSING_INPUT", errx.TypeValidation, http.StatusBadRequest, "필수 데이터가 누락되었습니다.")
)

func ErrMissingInput() *errx.Error {
	return ErrRegistry.New(CodeMissingInput)
}
