package repository

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// wrapWriteError 중복 키 에러를 도메인 에러로 바꿉니다.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicateKey, err)
	}
	return err
}

// notFoundAsNil 문서가 없으면 (nil, nil)을 반환하도록 에러를 정리합니다.
func notFoundAsNil(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

// FlattenSet 구조체를 점 표기 경로의 $set 문서로 펼칩니다.
// 중첩 문서는 필드 단위로 병합되고 배열은 통째로 교체됩니다.
// omitempty로 빠진 필드는 기존 값을 유지합니다.
func FlattenSet(v interface{}) (bson.D, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("부분 수정 문서 직렬화 실패: %w", err)
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("부분 수정 문서 역직렬화 실패: %w", err)
	}

	return flatten("", doc, bson.D{}), nil
}

func flatten(prefix string, doc bson.D, out bson.D) bson.D {
	for _, e := range doc {
		key := e.Key
		if prefix != "" {
			key = prefix + "." + e.Key
		}

		switch value := e.Value.(type) {
		case bson.D:
			out = flatten(key, value, out)
		case bson.M:
			out = flatten(key, sortedD(value), out)
		default:
			out = append(out, bson.E{Key: key, Value: value})
		}
	}
	return out
}

func sortedD(m bson.M) bson.D {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(bson.D, 0, len(m))
	for _, k := range keys {
		d = append(d, bson.E{Key: k, Value: m[k]})
	}
	return d
}
