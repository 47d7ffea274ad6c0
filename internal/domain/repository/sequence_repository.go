package repository

import "context"

// SequenceOrganizationCode 조직 코드 카운터 이름
const SequenceOrganizationCode = "organization_code"

// SequenceRepository 원자적 증가 카운터
type SequenceRepository interface {
	// Next 카운터를 1 증가시키고 증가된 값을 반환합니다. 최초 호출은 1입니다.
	Next(ctx context.Context, name string) (int64, error)
}
