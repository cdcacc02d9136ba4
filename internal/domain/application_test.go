package domain_test

import (
	"testing"

	"recruitai-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []domain.ApplicationStatus{
		domain.ApplicationStatusPending, domain.ApplicationStatusHired, domain.ApplicationStatusNotHired,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, domain.ApplicationStatus("NotHired").Valid())
	assert.False(t, domain.ApplicationStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, domain.RoleCandidate.Valid())
	assert.True(t, domain.RoleRecruiter.Valid())
	assert.False(t, domain.Role("Recruiter").Valid())
}

func TestApplicationViewLabel(t *testing.T) {
	v := domain.ApplicationView{CandidateUsername: "alice", JobTitle: "Engineer"}
	assert.Equal(t, "alice - Engineer", v.Label())
}
