package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	domainrepo "github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
)

func keys(d bson.D) []string {
	out := make([]string, 0, len(d))
	for _, e := range d {
		out = append(out, e.Key)
	}
	return out
}

func TestFlattenSet_Organization(t *testing.T) {
	city := "Pune"
	email := "hr@acme.test"
	profile := model.OrganizationProfile{
		HeadOffice:     &model.Address{City: &city},
		ContactDetails: &model.ContactDetails{OfficialEmail: &email},
	}

	set, err := FlattenSet(profile)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"head_office.city", "contact_details.official_email"}, keys(set))
	assert.Equal(t, "Pune", set.Map()["head_office.city"])
	assert.Equal(t, email, set.Map()["contact_details.official_email"])
}

func TestFlattenSet_Payroll(t *testing.T) {
	status := model.PayrollApproved
	details := model.PayrollDetails{
		PayrollCycle: &model.PayrollCycle{PayrollStatus: &status},
		BonusDetails: []model.Bonus{{}, {}},
		Metadata:     primitive.M{"source": primitive.M{"system": "import", "batch": int32(7)}},
	}

	set, err := FlattenSet(details)
	require.NoError(t, err)

	got := set.Map()
	assert.Equal(t, "Approved", got["payroll_cycle.payroll_status"])
	assert.Equal(t, "import", got["metadata.source.system"])
	assert.Equal(t, int32(7), got["metadata.source.batch"])

	// 배열은 통째로 교체됩니다.
	require.Contains(t, got, "bonus_details")
	assert.Len(t, got["bonus_details"], 2)
}

func TestFlattenSet_Empty(t *testing.T) {
	set, err := FlattenSet(model.PayrollDetails{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestWrapWriteError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	assert.True(t, errors.Is(wrapWriteError(dup), domainrepo.ErrDuplicateKey))
	assert.False(t, errors.Is(wrapWriteError(fmt.Errorf("timeout")), domainrepo.ErrDuplicateKey))
	assert.NoError(t, wrapWriteError(nil))
}

func TestNotFoundAsNil(t *testing.T) {
	assert.NoError(t, notFoundAsNil(mongo.ErrNoDocuments))
	assert.Error(t, notFoundAsNil(errors.New("boom")))
}

func TestPayrollListQuery(t *testing.T) {
	orgID := primitive.NewObjectID()

	q := payrollListQuery(orgID, domainrepo.PayrollFilter{})
	assert.Equal(t, bson.M{"$ne": true}, q["isDeleted"])

	status := model.PayrollDraft
	q = payrollListQuery(orgID, domainrepo.PayrollFilter{IncludeDeleted: true, Status: &status})
	assert.NotContains(t, q, "isDeleted")
	assert.Equal(t, model.PayrollDraft, q["payroll_cycle.payroll_status"])
}
