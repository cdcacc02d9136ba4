package domain_test

import (
	"testing"

	"recruitai-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationForRole(t *testing.T) {
	assert.Equal(t, []domain.View{domain.ViewHome, domain.ViewJobs}, domain.NavigationFor(domain.RoleCandidate))
	assert.Equal(t,
		[]domain.View{domain.ViewHome, domain.ViewPostJobs, domain.ViewApplications, domain.ViewAIScreening},
		domain.NavigationFor(domain.RoleRecruiter),
	)
	assert.Empty(t, domain.NavigationFor(domain.Role("Admin")))
}

func TestNavigationForReturnsCopy(t *testing.T) {
	nav := domain.NavigationFor(domain.RoleCandidate)
	nav[0] = domain.ViewAIScreening
	assert.False(t, domain.CanAccess(domain.RoleCandidate, domain.ViewAIScreening))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, domain.CanAccess(domain.RoleCandidate, domain.ViewJobs))
	assert.False(t, domain.CanAccess(domain.RoleCandidate, domain.ViewPostJobs))
	assert.True(t, domain.CanAccess(domain.RoleRecruiter, domain.ViewApplications))
	assert.False(t, domain.CanAccess(domain.RoleRecruiter, domain.ViewJobs))
	assert.False(t, domain.CanAccess(domain.Role(""), domain.ViewHome))
}

func TestSessionTransitions(t *testing.T) {
	s := domain.NewSession(&domain.User{ID: 7, Username: "alice", Role: domain.RoleCandidate})
	assert.Equal(t, domain.ViewHome, s.ActiveView)

	assert.ErrorIs(t, s.SelectJob(3), domain.ErrViewNotAllowed)

	require.NoError(t, s.Navigate(domain.ViewJobs))
	require.NoError(t, s.SelectJob(3))
	require.NotNil(t, s.SelectedJobID)
	assert.Equal(t, int64(3), *s.SelectedJobID)

	s.ClearJob()
	assert.Nil(t, s.SelectedJobID)

	require.NoError(t, s.SelectJob(4))
	require.NoError(t, s.Navigate(domain.ViewHome))
	assert.Nil(t, s.SelectedJobID)

	assert.ErrorIs(t, s.Navigate(domain.ViewApplications), domain.ErrViewNotAllowed)
	assert.Equal(t, domain.ViewHome, s.ActiveView)
}
