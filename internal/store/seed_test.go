package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	st := New()
	Seed(st)

	admin, ok := st.GetUserByUsername("admin")
	require.True(t, ok)
	assert.True(t, admin.VerifyPassword("admin123"))
	assert.Equal(t, "관리자", admin.Name)

	settings, ok := st.GetSiteSettings()
	require.True(t, ok)
	assert.Equal(t, "퍼피빌", settings.SiteName)
	assert.Contains(t, settings.BusinessHours, "weekdays")
	assert.Contains(t, settings.SocialLinks, "instagram")

	assert.Len(t, st.GetAllPrograms(), 3)
	assert.Len(t, st.GetProgramsByCategory("education"), 2)
	assert.Len(t, st.GetAllScheduleItems(), 9)
	assert.Len(t, st.GetAllGalleryImages(), 3)
	assert.Len(t, st.GetAllPriceItems(), 4)
	assert.Len(t, st.GetAllGroomingServices(), 3)
	assert.Len(t, st.GetAllCafeItems(), 3)
	assert.Len(t, st.GetAllFaqItems(), 3)
	assert.Len(t, st.GetAllReviews(), 3)

	// demo calendar events land in the current month
	now := time.Now()
	assert.Len(t, st.GetMonthlyProgramsByMonth(now.Year(), now.Month()), 3)

	// seeded reviews wait for back-office verification
	assert.Empty(t, st.GetVerifiedReviews())

	// no admission requests are seeded
	assert.Empty(t, st.GetAllAdmissionRequests())
}

func TestSeedIsIdempotent(t *testing.T) {
	st := New()
	Seed(st)
	Seed(st)

	assert.Len(t, st.GetAllPrograms(), 3)
	assert.Len(t, st.GetAllUsers(), 1)
}
