package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

func newProgram(title, category string, order int) models.InsertProgram {
	return models.InsertProgram{
		Title:       title,
		Category:    category,
		Description: "desc",
		Order:       order,
	}
}

func TestCreateProgramAssignsMonotonicIDs(t *testing.T) {
	st := New()

	first := st.CreateProgram(newProgram("a", "education", 1))
	second := st.CreateProgram(newProgram("b", "education", 2))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// a deleted id is never handed out again
	require.True(t, st.DeleteProgram(second.ID))
	third := st.CreateProgram(newProgram("c", "fitness", 3))
	assert.Equal(t, 3, third.ID)
}

func TestUpdateProgramMergesOnlyProvidedFields(t *testing.T) {
	st := New()

	created := st.CreateProgram(models.InsertProgram{
		Title:       "기다려 훈련",
		Category:    "education",
		Description: "desc",
		Benefits:    []string{"a", "b"},
		Order:       1,
	})

	newTitle := "바뀐 제목"
	updated, ok := st.UpdateProgram(created.ID, models.ProgramUpdate{Title: &newTitle})
	require.True(t, ok)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Benefits, updated.Benefits)
	assert.Equal(t, created.Order, updated.Order)

	// CreatedAt is immutable, UpdatedAt moves forward
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateProgramUnknownID(t *testing.T) {
	st := New()

	title := "x"
	_, ok := st.UpdateProgram(42, models.ProgramUpdate{Title: &title})
	assert.False(t, ok)
}

func TestDeleteProgram(t *testing.T) {
	st := New()

	created := st.CreateProgram(newProgram("a", "education", 1))

	require.True(t, st.DeleteProgram(created.ID))

	_, ok := st.GetProgram(created.ID)
	assert.False(t, ok)

	// second delete of the same id reports a miss
	assert.False(t, st.DeleteProgram(created.ID))
}

func TestGetAllProgramsSortedByOrder(t *testing.T) {
	st := New()

	st.CreateProgram(newProgram("c", "education", 3))
	st.CreateProgram(newProgram("a", "education", 1))
	st.CreateProgram(newProgram("b", "fitness", 2))

	programs := st.GetAllPrograms()
	require.Len(t, programs, 3)

	for i := 1; i < len(programs); i++ {
		assert.LessOrEqual(t, programs[i-1].Order, programs[i].Order)
	}
}

func TestGetProgramsByCategoryExactMatch(t *testing.T) {
	st := New()

	st.CreateProgram(newProgram("a", "education", 1))
	st.CreateProgram(newProgram("b", "Education", 2))
	st.CreateProgram(newProgram("c", "fitness", 3))

	// category matching is exact and case sensitive
	education := st.GetProgramsByCategory("education")
	require.Len(t, education, 1)
	assert.Equal(t, "a", education[0].Title)

	assert.Empty(t, st.GetProgramsByCategory("EDUCATION"))
	assert.Empty(t, st.GetProgramsByCategory("unknown"))
}

func TestGetActiveAnnouncements(t *testing.T) {
	st := New()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	lastWeek := now.AddDate(0, 0, -7)

	inactive := false

	live := st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "live", Content: "c", StartDate: yesterday, EndDate: &tomorrow,
	})
	st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "switched off", Content: "c", IsActive: &inactive, StartDate: yesterday,
	})
	st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "not yet", Content: "c", StartDate: tomorrow,
	})
	st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "expired", Content: "c", StartDate: lastWeek, EndDate: &yesterday,
	})
	openEnded := st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "open ended", Content: "c", StartDate: yesterday,
	})

	active := st.GetActiveAnnouncements()
	require.Len(t, active, 2)
	assert.Equal(t, live.ID, active[0].ID)
	assert.Equal(t, openEnded.ID, active[1].ID)
}

func TestAnnouncementIsActiveDefaultsToTrue(t *testing.T) {
	st := New()

	a := st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "t", Content: "c", StartDate: time.Now(),
	})
	assert.True(t, a.IsActive)
}

func TestGalleryImagesSortedNewestFirst(t *testing.T) {
	st := New()

	day := func(d int) *time.Time {
		t := time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	st.CreateGalleryImage(models.InsertGalleryImage{Title: "old", ImageURL: "/a.jpg", DateAdded: day(1)})
	st.CreateGalleryImage(models.InsertGalleryImage{Title: "new", ImageURL: "/b.jpg", DateAdded: day(20)})
	st.CreateGalleryImage(models.InsertGalleryImage{Title: "mid", ImageURL: "/c.jpg", DateAdded: day(10)})

	images := st.GetAllGalleryImages()
	require.Len(t, images, 3)
	assert.Equal(t, "new", images[0].Title)
	assert.Equal(t, "mid", images[1].Title)
	assert.Equal(t, "old", images[2].Title)
}

func TestGalleryImageDefaults(t *testing.T) {
	st := New()

	img := st.CreateGalleryImage(models.InsertGalleryImage{Title: "t", ImageURL: "/a.jpg"})

	assert.Equal(t, "general", img.Category)
	assert.WithinDuration(t, time.Now(), img.DateAdded, time.Second)
}

func TestMonthlyProgramsByMonth(t *testing.T) {
	st := New()

	st.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title: "late", Date: time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
	})
	st.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title: "early", Date: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
	})
	st.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title: "next month", Date: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})

	june := st.GetMonthlyProgramsByMonth(2025, time.June)
	require.Len(t, june, 2)
	assert.Equal(t, "early", june[0].Title)
	assert.Equal(t, "late", june[1].Title)

	assert.Empty(t, st.GetMonthlyProgramsByMonth(2024, time.June))
}

func TestAdmissionRequestDefaults(t *testing.T) {
	st := New()

	req := st.CreateAdmissionRequest(models.InsertAdmissionRequest{
		OwnerName: "김지연", DogName: "콩이", Email: "a@b.com",
	})

	// new requests always start as pending tours
	assert.Equal(t, models.AdmissionStatusPending, req.Status)
	assert.Equal(t, "tour", req.RequestType)
}

func TestAdmissionRequestsByStatus(t *testing.T) {
	st := New()

	first := st.CreateAdmissionRequest(models.InsertAdmissionRequest{
		OwnerName: "a", DogName: "d", Email: "a@b.com",
	})
	st.CreateAdmissionRequest(models.InsertAdmissionRequest{
		OwnerName: "b", DogName: "d", Email: "b@b.com",
	})

	confirmed := models.AdmissionStatusConfirmed
	_, ok := st.UpdateAdmissionRequest(first.ID, models.AdmissionRequestUpdate{Status: &confirmed})
	require.True(t, ok)

	pending := st.GetAdmissionRequestsByStatus(models.AdmissionStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].OwnerName)

	got := st.GetAdmissionRequestsByStatus(models.AdmissionStatusConfirmed)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
}

func TestReviewStartsUnverified(t *testing.T) {
	st := New()

	r := st.CreateReview(models.InsertReview{AuthorName: "a", Content: "c", Rating: 5})
	assert.False(t, r.IsVerified)

	assert.Empty(t, st.GetVerifiedReviews())

	verified := true
	_, ok := st.UpdateReview(r.ID, models.ReviewUpdate{IsVerified: &verified})
	require.True(t, ok)

	got := st.GetVerifiedReviews()
	require.Len(t, got, 1)
	assert.Equal(t, r.ID, got[0].ID)
}

func TestCafeItemCategoryDefaultsToDrinks(t *testing.T) {
	st := New()

	item := st.CreateCafeItem(models.InsertCafeItem{Name: "퍼피 라떼", Price: "6,000원"})
	assert.Equal(t, "drinks", item.Category)
}

func TestFaqItemCategoryDefaultsToGeneral(t *testing.T) {
	st := New()

	item := st.CreateFaqItem(models.InsertFaqItem{Question: "q", Answer: "a"})
	assert.Equal(t, "general", item.Category)
}

func TestCreateUserHashesPassword(t *testing.T) {
	st := New()

	u := st.CreateUser(models.InsertUser{Username: "admin", Password: "admin123", Name: "관리자"})

	assert.NotEqual(t, "admin123", u.Password)
	assert.True(t, u.VerifyPassword("admin123"))
	assert.False(t, u.VerifyPassword("wrong"))
	assert.Equal(t, "admin", u.Role)
}

func TestGetUserByUsername(t *testing.T) {
	st := New()

	created := st.CreateUser(models.InsertUser{Username: "admin", Password: "p", Name: "n"})

	u, ok := st.GetUserByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, created.ID, u.ID)

	_, ok = st.GetUserByUsername("nobody")
	assert.False(t, ok)
}

func TestSiteSettingsSingleton(t *testing.T) {
	st := New()

	_, ok := st.GetSiteSettings()
	assert.False(t, ok)

	first := st.CreateSiteSettings(models.InsertSiteSettings{SiteName: "퍼피빌"})
	st.CreateSiteSettings(models.InsertSiteSettings{SiteName: "second"})

	got, ok := st.GetSiteSettings()
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "퍼피빌", got.SiteName)
}

func TestUpdateSiteSettingsIgnoresID(t *testing.T) {
	st := New()

	first := st.CreateSiteSettings(models.InsertSiteSettings{SiteName: "퍼피빌"})

	phone := "02-999-9999"
	updated, ok := st.UpdateSiteSettings(999, models.SiteSettingsUpdate{Phone: &phone})
	require.True(t, ok)

	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "퍼피빌", updated.SiteName)
}

func TestUpdateSiteSettingsWithoutRecord(t *testing.T) {
	st := New()

	phone := "02-999-9999"
	_, ok := st.UpdateSiteSettings(1, models.SiteSettingsUpdate{Phone: &phone})
	assert.False(t, ok)
}

func TestListsAreNeverNil(t *testing.T) {
	st := New()

	assert.NotNil(t, st.GetAllPrograms())
	assert.NotNil(t, st.GetProgramsByCategory("x"))
	assert.NotNil(t, st.GetActiveAnnouncements())
	assert.NotNil(t, st.GetAllScheduleItems())
	assert.NotNil(t, st.GetMonthlyProgramsByMonth(2025, time.January))
	assert.NotNil(t, st.GetAllGalleryImages())
	assert.NotNil(t, st.GetAllPriceItems())
	assert.NotNil(t, st.GetAllGroomingServices())
	assert.NotNil(t, st.GetAllCafeItems())
	assert.NotNil(t, st.GetAllAdmissionRequests())
	assert.NotNil(t, st.GetAllFaqItems())
	assert.NotNil(t, st.GetAllReviews())
}
