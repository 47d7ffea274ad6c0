package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	SuperAdmin   SuperAdminRepository
	Organization OrganizationRepository
	OrgAdmin     OrgAdminRepository
	Payroll      PayrollRepository
	Sequence     SequenceRepository
	Cache        CacheRepository // Redis 비활성화 시 nil
	Events       EventPublisher
}

// NewRepositories 모든 레포지토리를 포함하는 컬렉션 생성
func NewRepositories(
	superAdminRepo SuperAdminRepository,
	organizationRepo OrganizationRepository,
	orgAdminRepo OrgAdminRepository,
	payrollRepo PayrollRepository,
	sequenceRepo SequenceRepository,
	cacheRepo CacheRepository,
	events EventPublisher,
) *Repositories {
	return &Repositories{
		SuperAdmin:   superAdminRepo,
		Organization: organizationRepo,
		OrgAdmin:     orgAdminRepo,
		Payroll:      payrollRepo,
		Sequence:     sequenceRepo,
		Cache:        cacheRepo,
		Events:       events,
	}
}
