package hwpx

import "errors"

var (
	// ErrEmptyInput is returned when there are no questions to convert.
	ErrEmptyInput = errors.New("변환할 문제가 없습니다")

	// ErrInvalidTemplate is returned when the template package is missing
	// its content resource or the resource cannot anchor an insertion point.
	ErrInvalidTemplate = errors.New("유효하지 않은 템플릿입니다")
)
