package http

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore 테스트용 인메모리 저장소. 모든 레포지토리 인터페이스를 구현합니다.
type memoryStore struct {
	mu            sync.Mutex
	superAdmins   map[primitive.ObjectID]model.SuperAdmin
	organizations map[primitive.ObjectID]model.Organization
	orgAdmins     map[primitive.ObjectID]model.OrgAdmin
	payrolls      map[primitive.ObjectID]model.Payroll
	counters      map[string]int64
	events        []model.DomainEvent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		superAdmins:   map[primitive.ObjectID]model.SuperAdmin{},
		organizations: map[primitive.ObjectID]model.Organization{},
		orgAdmins:     map[primitive.ObjectID]model.OrgAdmin{},
		payrolls:      map[primitive.ObjectID]model.Payroll{},
		counters:      map[string]int64{},
	}
}

func (s *memoryStore) repositories() *repository.Repositories {
	return repository.NewRepositories(
		superAdminStore{s},
		organizationStore{s},
		orgAdminStore{s},
		payrollStore{s},
		s,
		nil,
		s,
	)
}

// mergeJSON 저장소의 $set 병합과 같은 규칙으로 patch를 dst에 병합합니다.
// 중첩 객체는 필드 단위로 합치고 배열은 통째로 교체합니다.
func mergeJSON(dst, patch interface{}) error {
	var base, changes map[string]interface{}
	raw, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return err
	}
	raw, err = json.Marshal(patch)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &changes); err != nil {
		return err
	}
	mergeMaps(base, changes)
	raw, err = json.Marshal(base)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func mergeMaps(base, changes map[string]interface{}) {
	for k, v := range changes {
		nested, ok := v.(map[string]interface{})
		current, isMap := base[k].(map[string]interface{})
		if ok && isMap {
			mergeMaps(current, nested)
			continue
		}
		base[k] = v
	}
}

// Next SequenceRepository
func (s *memoryStore) Next(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}

// Publish EventPublisher
func (s *memoryStore) Publish(ctx context.Context, event model.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

type superAdminStore struct{ *memoryStore }

func (r superAdminStore) Create(ctx context.Context, admin *model.SuperAdmin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.superAdmins {
		if existing.Email == admin.Email {
			return repository.ErrDuplicateKey
		}
	}
	admin.ID = primitive.NewObjectID()
	r.superAdmins[admin.ID] = *admin
	return nil
}

func (r superAdminStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.SuperAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.superAdmins[id]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r superAdminStore) FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.superAdmins {
		if admin.Email == email {
			return &admin, nil
		}
	}
	return nil, nil
}

func (r superAdminStore) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin := r.superAdmins[id]
	admin.LastLogin = &at
	r.superAdmins[id] = admin
	return nil
}

func (r superAdminStore) AddLinkedOrganization(ctx context.Context, id primitive.ObjectID, link model.LinkedOrganization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin := r.superAdmins[id]
	admin.LinkedOrganizations = append(append([]model.LinkedOrganization{}, admin.LinkedOrganizations...), link)
	r.superAdmins[id] = admin
	return nil
}

func (r superAdminStore) RenameLinkedOrganization(ctx context.Context, orgID primitive.ObjectID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, admin := range r.superAdmins {
		links := append([]model.LinkedOrganization{}, admin.LinkedOrganizations...)
		for i := range links {
			if links[i].OrganizationID == orgID {
				links[i].OrganizationName = name
			}
		}
		admin.LinkedOrganizations = links
		r.superAdmins[id] = admin
	}
	return nil
}

type organizationStore struct{ *memoryStore }

func (r organizationStore) Create(ctx context.Context, org *model.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.organizations {
		if existing.OrganizationCode == org.OrganizationCode {
			return repository.ErrDuplicateKey
		}
	}
	org.ID = primitive.NewObjectID()
	r.organizations[org.ID] = *org
	return nil
}

func (r organizationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.organizations[id]
	if !ok {
		return nil, nil
	}
	return &org, nil
}

func (r organizationStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter repository.OrganizationFilter) ([]*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Organization
	for _, id := range ids {
		org, ok := r.organizations[id]
		if !ok || (filter.Status != nil && org.Status != *filter.Status) {
			continue
		}
		out = append(out, &org)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r organizationStore) Update(ctx context.Context, id primitive.ObjectID, update repository.OrganizationUpdate) (*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.organizations[id]
	if !ok {
		return nil, nil
	}
	if err := mergeJSON(&org.OrganizationProfile, update.Profile); err != nil {
		return nil, err
	}
	if update.Name != nil {
		org.Name = *update.Name
	}
	if update.PasswordHash != nil {
		org.Password = *update.PasswordHash
	}
	if update.Status != nil {
		org.Status = *update.Status
	}
	org.UpdatedAt = time.Now().UTC()
	r.organizations[id] = org
	return &org, nil
}

func (r organizationStore) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.organizations[id]
	if !ok {
		return nil, nil
	}
	org.Status = model.OrganizationInactive
	org.DeletedAt = &at
	org.UpdatedAt = at
	r.organizations[id] = org
	return &org, nil
}

func (r organizationStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.organizations, id)
	return nil
}

type orgAdminStore struct{ *memoryStore }

func (r orgAdminStore) Create(ctx context.Context, admin *model.OrgAdmin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orgAdmins {
		if existing.OrganizationCode == admin.OrganizationCode {
			return repository.ErrDuplicateKey
		}
	}
	admin.ID = primitive.NewObjectID()
	r.orgAdmins[admin.ID] = *admin
	return nil
}

func (r orgAdminStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrgAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.orgAdmins[id]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r orgAdminStore) FindByOrganizationCode(ctx context.Context, code string) (*model.OrgAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.orgAdmins {
		if admin.OrganizationCode == code {
			return &admin, nil
		}
	}
	return nil, nil
}

type payrollStore struct{ *memoryStore }

func (r payrollStore) Create(ctx context.Context, payroll *model.Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payroll.ID = primitive.NewObjectID()
	r.payrolls[payroll.ID] = *payroll
	return nil
}

func (r payrollStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payroll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payroll, ok := r.payrolls[id]
	if !ok {
		return nil, nil
	}
	return &payroll, nil
}

func (r payrollStore) FindByOrganization(ctx context.Context, orgID primitive.ObjectID, filter repository.PayrollFilter) ([]*model.Payroll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Payroll
	for _, p := range r.payrolls {
		if p.OrganizationID != orgID {
			continue
		}
		if p.IsDeleted && !filter.IncludeDeleted {
			continue
		}
		if filter.Status != nil && p.Status() != *filter.Status {
			continue
		}
		out = append(out, &p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r payrollStore) Update(ctx context.Context, id primitive.ObjectID, details model.PayrollDetails, entry model.AuditEntry) (*model.Payroll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payroll, ok := r.payrolls[id]
	if !ok {
		return nil, nil
	}
	if err := mergeJSON(&payroll.PayrollDetails, details); err != nil {
		return nil, err
	}
	payroll.AuditTrail = append(append([]model.AuditEntry{}, payroll.AuditTrail...), entry)
	payroll.UpdatedAt = entry.At
	r.payrolls[id] = payroll
	return &payroll, nil
}

func (r payrollStore) SoftDelete(ctx context.Context, id primitive.ObjectID, deletedBy primitive.ObjectID, at time.Time, entry model.AuditEntry) (*model.Payroll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payroll, ok := r.payrolls[id]
	if !ok {
		return nil, nil
	}
	cancelled := model.PayrollCancelled
	cycle := model.PayrollCycle{}
	if payroll.PayrollCycle != nil {
		cycle = *payroll.PayrollCycle
	}
	cycle.PayrollStatus = &cancelled
	payroll.PayrollCycle = &cycle
	payroll.IsDeleted = true
	payroll.DeletedAt = &at
	payroll.DeletedBy = &deletedBy
	payroll.UpdatedAt = at
	payroll.AuditTrail = append(append([]model.AuditEntry{}, payroll.AuditTrail...), entry)
	r.payrolls[id] = payroll
	return &payroll, nil
}
