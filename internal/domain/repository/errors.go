package repository

import "errors"

// ErrDuplicateKey 고유 인덱스 위반 시 저장소가 감싸서 반환하는 에러
var ErrDuplicateKey = errors.New("duplicate key")
