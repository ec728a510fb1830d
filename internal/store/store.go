// Package store holds all back-office content in memory. Records live in
// per-kind maps keyed by id; ids are handed out by monotonic counters and
// are never reused, even after a delete. A single lock guards the whole
// store since the web layer serves requests from multiple goroutines.
package store

import (
	"sync"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

// Store is the in-memory content store. Create it with New and pass it to
// the web layer; all methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	users             map[int]models.User
	announcements     map[int]models.Announcement
	programs          map[int]models.Program
	scheduleItems     map[int]models.ScheduleItem
	monthlyPrograms   map[int]models.MonthlyProgram
	galleryImages     map[int]models.GalleryImage
	priceItems        map[int]models.PriceItem
	groomingServices  map[int]models.GroomingService
	cafeItems         map[int]models.CafeItem
	admissionRequests map[int]models.AdmissionRequest
	faqItems          map[int]models.FaqItem
	reviews           map[int]models.Review
	siteSettings      map[int]models.SiteSettings

	nextUserID             int
	nextAnnouncementID     int
	nextProgramID          int
	nextScheduleItemID     int
	nextMonthlyProgramID   int
	nextGalleryImageID     int
	nextPriceItemID        int
	nextGroomingServiceID  int
	nextCafeItemID         int
	nextAdmissionRequestID int
	nextFaqItemID          int
	nextReviewID           int
	nextSiteSettingsID     int
}

// New returns an empty store with all id counters starting at 1.
func New() *Store {
	return &Store{
		users:             make(map[int]models.User),
		announcements:     make(map[int]models.Announcement),
		programs:          make(map[int]models.Program),
		scheduleItems:     make(map[int]models.ScheduleItem),
		monthlyPrograms:   make(map[int]models.MonthlyProgram),
		galleryImages:     make(map[int]models.GalleryImage),
		priceItems:        make(map[int]models.PriceItem),
		groomingServices:  make(map[int]models.GroomingService),
		cafeItems:         make(map[int]models.CafeItem),
		admissionRequests: make(map[int]models.AdmissionRequest),
		faqItems:          make(map[int]models.FaqItem),
		reviews:           make(map[int]models.Review),
		siteSettings:      make(map[int]models.SiteSettings),

		nextUserID:             1,
		nextAnnouncementID:     1,
		nextProgramID:          1,
		nextScheduleItemID:     1,
		nextMonthlyProgramID:   1,
		nextGalleryImageID:     1,
		nextPriceItemID:        1,
		nextGroomingServiceID:  1,
		nextCafeItemID:         1,
		nextAdmissionRequestID: 1,
		nextFaqItemID:          1,
		nextReviewID:           1,
		nextSiteSettingsID:     1,
	}
}
