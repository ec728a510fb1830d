package store

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/PuppyVill/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func datePtr(t time.Time) *time.Time { return &t }

// Seed fills an empty store with the default admin account, the site
// settings record and the demo content shown on a fresh install.
func Seed(s *Store) {
	if _, ok := s.GetUserByUsername("admin"); ok {
		log.Debug().Msg("store already seeded, skipping")
		return
	}

	s.CreateUser(models.InsertUser{
		Username: "admin",
		Password: "admin123",
		Name:     "관리자",
		Email:    "admin@puppyville.com",
		Role:     "admin",
	})

	s.CreateSiteSettings(models.InsertSiteSettings{
		SiteName: "퍼피빌",
		LogoURL:  "/images/logo.svg",
		Phone:    "02-123-4567",
		Email:    "contact@puppyville.com",
		Address:  "서울특별시 강남구 강아지로 123",
		BusinessHours: map[string]string{
			"weekdays": "오전 9시 - 오후 6시",
			"weekend":  "오전 10시 - 오후 5시",
			"holidays": "휴무",
		},
		SocialLinks: map[string]string{
			"instagram": "https://instagram.com/puppyville",
			"facebook":  "https://facebook.com/puppyville",
			"kakaotalk": "https://pf.kakao.com/puppyville",
		},
		MetaTitle:       "퍼피빌 - 강아지 유치원",
		MetaDescription: "강아지의 교육과 사회화를 위한 최고의 유치원, 퍼피빌입니다. 교육, 피트니스, 미용 등 다양한 서비스를 제공합니다.",
	})

	seedAnnouncements(s)
	seedPrograms(s)
	seedSchedule(s)
	seedMonthlyPrograms(s)
	seedGallery(s)
	seedPrices(s)
	seedGrooming(s)
	seedCafe(s)
	seedFaq(s)
	seedReviews(s)

	log.Info().Msg("store seeded with demo content")
}

func seedAnnouncements(s *Store) {
	s.CreateAnnouncement(models.InsertAnnouncement{
		Title:      "퍼피빌 신규 회원 할인 이벤트",
		Content:    "신규 회원 등록 시 첫 달 10% 할인 혜택을 드립니다! 지금 바로 상담 예약하세요.",
		IsActive:   boolPtr(true),
		StartDate:  time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    datePtr(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)),
		ButtonText: "상담 예약하기",
		ButtonLink: "#admission",
	})
	s.CreateAnnouncement(models.InsertAnnouncement{
		Title:      "5월 특별 프로그램: 물놀이 특강",
		Content:    "여름을 앞두고 강아지 물놀이 적응 특별 프로그램을 진행합니다. 수영에 대한 두려움을 없애고 안전하게 물놀이를 즐기는 법을 배워요!",
		IsActive:   boolPtr(true),
		StartDate:  time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    datePtr(time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC)),
		ButtonText: "자세히 보기",
		ButtonLink: "#programs",
	})
}

func seedPrograms(s *Store) {
	s.CreateProgram(models.InsertProgram{
		Title:       "기다려 훈련",
		Category:    "education",
		Description: "가장 기본적이면서도 중요한 '기다려' 명령을 학습하는 프로그램입니다. 다양한 상황에서 주인의 지시를 기다릴 수 있도록 훈련합니다.",
		Benefits:    []string{"자기 통제력 향상", "안전사고 예방", "주인과의 신뢰 관계 구축"},
		Emoji:       "⏱️",
		ImageURL:    "/images/programs/wait-training.jpg",
		Order:       1,
	})
	s.CreateProgram(models.InsertProgram{
		Title:       "타겟 매트 트레이닝",
		Category:    "education",
		Description: "강아지가 특정 매트나 지정된 장소에 머무르도록 훈련하는 프로그램입니다. 방문객이 오거나 외출 시에도 안정적으로 자리를 지킬 수 있게 됩니다.",
		Benefits:    []string{"집중력 향상", "불안감 감소", "가정 내 규칙 확립"},
		Emoji:       "🎯",
		ImageURL:    "/images/programs/target-mat.jpg",
		Order:       2,
	})
	s.CreateProgram(models.InsertProgram{
		Title:       "까발레티 운동",
		Category:    "fitness",
		Description: "낮은 장애물을 뛰어넘거나 걸어가는 운동으로, 강아지의 운동 능력과 신체 인지 능력을 발달시키는 데 도움이 됩니다.",
		Benefits:    []string{"관절 건강 증진", "신체 균형감 향상", "근육 발달"},
		Emoji:       "🏃",
		ImageURL:    "/images/programs/cavaletti.jpg",
		Order:       3,
	})
}

func seedSchedule(s *Store) {
	items := []models.InsertScheduleItem{
		{TimeSlot: "09:00 - 09:30", Activity: "등원 및 자유놀이", Description: "친구들과 인사하고 자유롭게 놀이 시간을 가집니다.", Icon: "🚪", Order: 1},
		{TimeSlot: "09:30 - 10:30", Activity: "아침 산책", Description: "강아지들의 스트레스 해소와 배변 활동을 돕는 가벼운 산책 시간입니다.", Icon: "🐾", Order: 2},
		{TimeSlot: "10:30 - 11:30", Activity: "오전 교육 프로그램", Description: "강아지의 집중력이 높은 오전 시간대에 훈련 및 교육 프로그램을 진행합니다.", Icon: "📚", Order: 3},
		{TimeSlot: "11:30 - 12:30", Activity: "점심식사 및 휴식", Description: "균형 잡힌 식사와 소화를 위한 휴식 시간입니다.", Icon: "🍽️", Order: 4},
		{TimeSlot: "12:30 - 14:00", Activity: "낮잠 시간", Description: "개별 공간에서 편안하게 휴식을 취합니다.", Icon: "😴", Order: 5},
		{TimeSlot: "14:00 - 15:00", Activity: "피트니스 프로그램", Description: "강아지의 신체 건강을 위한 다양한 운동 프로그램을 진행합니다.", Icon: "💪", Order: 6},
		{TimeSlot: "15:00 - 16:00", Activity: "사회화 놀이 시간", Description: "다른 강아지들과 적절한 방식으로 놀이하며 사회성을 기릅니다.", Icon: "👥", Order: 7},
		{TimeSlot: "16:00 - 17:00", Activity: "오후 간식 및 휴식", Description: "가벼운 간식과 휴식 시간입니다.", Icon: "🍪", Order: 8},
		{TimeSlot: "17:00 - 18:00", Activity: "하원 준비 및 귀가", Description: "하루 활동을 정리하고 보호자 맞이할 준비를 합니다.", Icon: "👋", Order: 9},
	}
	for _, item := range items {
		s.CreateScheduleItem(item)
	}
}

func seedMonthlyPrograms(s *Store) {
	// Demo events land in the current month so the calendar is never empty.
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	s.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title:       "노즈워크 특강",
		Date:        monthStart.AddDate(0, 0, 11),
		Description: "강아지의 뛰어난 후각을 활용한 놀이와 훈련을 배웁니다.",
		ImageURL:    "/images/monthly/nosework.jpg",
	})
	s.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title:       "애견 수영장 개장",
		Date:        monthStart.AddDate(0, 0, 14),
		Description: "올해 첫 수영장 개장! 물놀이를 좋아하는 강아지들에게 시원한 경험을 선사합니다.",
		ImageURL:    "/images/monthly/pool.jpg",
	})
	s.CreateMonthlyProgram(models.InsertMonthlyProgram{
		Title:       "퍼피빌 생일파티",
		Date:        monthStart.AddDate(0, 0, 19),
		Description: "이 달에 생일을 맞이하는 강아지 친구들을 위한 특별한 생일 파티를 개최합니다.",
		ImageURL:    "/images/monthly/birthday.jpg",
	})
}

func seedGallery(s *Store) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	s.CreateGalleryImage(models.InsertGalleryImage{
		Title:       "기다려 훈련 중인 콩이",
		Description: "인내심을 기르는 중인 콩이의 진지한 모습",
		ImageURL:    "/images/gallery/training1.jpg",
		Category:    "education",
		Tags:        []string{"training", "puppy"},
		DateAdded:   datePtr(monthStart.AddDate(0, 0, 4)),
	})
	s.CreateGalleryImage(models.InsertGalleryImage{
		Title:       "봄 소풍",
		Description: "벚꽃이 아름다운 공원에서의 봄소풍 단체사진",
		ImageURL:    "/images/gallery/spring_picnic.jpg",
		Category:    "events",
		Tags:        []string{"picnic", "spring", "group"},
		DateAdded:   datePtr(monthStart.AddDate(0, 0, 7)),
	})
	s.CreateGalleryImage(models.InsertGalleryImage{
		Title:       "까발레티 운동 중인 몽이",
		Description: "장애물 훈련을 통해 균형감각을 키우는 몽이",
		ImageURL:    "/images/gallery/fitness1.jpg",
		Category:    "fitness",
		Tags:        []string{"exercise", "training"},
		DateAdded:   datePtr(monthStart.AddDate(0, -1, 27)),
	})
}

func seedPrices(s *Store) {
	items := []models.InsertPriceItem{
		{Service: "데이케어 (반일)", Category: "daycare", Description: "오전 9시부터 오후 2시까지의 반나절 돌봄 서비스", Price: "30,000원", Duration: "5시간", Notes: "간식 포함, 식사 별도", IsPopular: false, Order: 1},
		{Service: "데이케어 (종일)", Category: "daycare", Description: "오전 9시부터 오후 6시까지의 종일 돌봄 서비스", Price: "45,000원", Duration: "9시간", Notes: "간식 및 점심 식사 포함", IsPopular: true, Order: 2},
		{Service: "1:1 피트니스", Category: "fitness", Description: "전문 트레이너와 함께하는 맞춤형 운동 프로그램", Price: "50,000원", Duration: "50분", Notes: "예약 필수", IsPopular: true, Order: 3},
		{Service: "호텔링 (1박)", Category: "hotel", Description: "24시간 전문 케어와 함께하는 호텔링 서비스", Price: "60,000원", Duration: "24시간", Notes: "모든 식사 및 간식 포함", IsPopular: false, Order: 4},
	}
	for _, item := range items {
		s.CreatePriceItem(item)
	}
}

func seedGrooming(s *Store) {
	services := []models.InsertGroomingService{
		{Title: "전체 미용", Description: "목욕, 드라이, 전체 커트, 발톱 정리, 귀 청소, 항문낭 등 모든 미용 서비스가 포함된 풀 패키지입니다.", BeforeImageURL: "/images/grooming/before_full.jpg", AfterImageURL: "/images/grooming/after_full.jpg", Price: "60,000원~", Duration: "약 2시간", Order: 1},
		{Title: "부분 미용", Description: "얼굴, 발, 엉덩이 등 특정 부위만 집중적으로 케어하는 서비스입니다.", BeforeImageURL: "/images/grooming/before_partial.jpg", AfterImageURL: "/images/grooming/after_partial.jpg", Price: "30,000원~", Duration: "약 1시간", Order: 2},
		{Title: "스파 트리트먼트", Description: "특별한 아로마 테라피 샴푸와 트리트먼트로 피부와 모질을 개선하는 프리미엄 스파 서비스입니다.", BeforeImageURL: "/images/grooming/before_spa.jpg", AfterImageURL: "/images/grooming/after_spa.jpg", Price: "50,000원~", Duration: "약 1시간 30분", Order: 3},
	}
	for _, svc := range services {
		s.CreateGroomingService(svc)
	}
}

func seedCafe(s *Store) {
	items := []models.InsertCafeItem{
		{Name: "퍼피 라떼", Description: "강아지를 위한 우유 거품이 올라간 특별한 음료 (사람도 음용 가능)", Price: "6,000원", Category: "drinks", ImageURL: "/images/cafe/puppy_latte.jpg", IsPopular: true, Order: 1},
		{Name: "멍멍 쿠키", Description: "천연 재료로 만든 강아지 모양 쿠키", Price: "4,500원", Category: "desserts", ImageURL: "/images/cafe/dog_cookies.jpg", IsPopular: true, Order: 2},
		{Name: "과일 요거트 파르페", Description: "신선한 계절 과일과 요거트의 조합", Price: "8,000원", Category: "desserts", ImageURL: "/images/cafe/fruit_parfait.jpg", IsPopular: false, Order: 3},
	}
	for _, item := range items {
		s.CreateCafeItem(item)
	}
}

func seedFaq(s *Store) {
	items := []models.InsertFaqItem{
		{Question: "퍼피빌은 어떤 크기의 강아지들이 이용할 수 있나요?", Answer: "퍼피빌은 모든 크기의 강아지들을 환영합니다. 소형견부터 대형견까지 크기에 맞는 활동 공간과 프로그램을 제공하고 있으며, 필요에 따라 크기별로 그룹을 나누어 진행하는 활동도 있습니다.", Category: "general", Order: 1},
		{Question: "강아지가 백신 접종을 완료하지 않았어도 데이케어 이용이 가능한가요?", Answer: "안전한 환경을 위해 모든 강아지는 기본 백신(DHPPL, 코로나, 켄넬코프)을 완료한 상태여야 합니다. 또한 최소 1년에 한 번 광견병 백신 접종 증명이 필요합니다. 백신 기록은 첫 방문 시 제시해 주셔야 합니다.", Category: "health", Order: 2},
		{Question: "어떤 사료를 제공하나요? 직접 가져올 수 있나요?", Answer: "퍼피빌에서는 프리미엄 사료를 기본으로 제공하고 있으나, 강아지의 특별한 식이 요구사항이 있다면 직접 사료를 준비해 오셔도 됩니다. 알레르기나 특별한 식이 제한이 있는 경우 미리 알려주시면 최대한 배려하겠습니다.", Category: "food", Order: 3},
	}
	for _, item := range items {
		s.CreateFaqItem(item)
	}
}

func seedReviews(s *Store) {
	reviews := []models.InsertReview{
		{AuthorName: "김지연", DogName: "콩이 (포메라니안)", Content: "처음에는 사회성이 부족했던 콩이가 퍼피빌에서 지내면서 다른 강아지들과 잘 어울리게 되었어요. 특히 기다려 훈련이 정말 효과적이었습니다. 선생님들도 너무 친절하시고 항상 자세한 피드백을 주셔서 감사해요!", Rating: 5, IsAnonymous: false, ImageURL: "/images/reviews/kong.jpg"},
		{AuthorName: "박현우", DogName: "몽이 (비숑)", Content: "저희 몽이는 활동량이 많은 편인데, 피트니스 프로그램을 통해 건강하게 에너지를 소비할 수 있어서 좋아요. 집에 와서도 스트레스 받은 모습 없이 편안하게 지내요. 앞으로도 계속 이용할 계획입니다.", Rating: 5, IsAnonymous: false, ImageURL: "/images/reviews/mongyi.jpg"},
		{AuthorName: "익명", DogName: "말티즈", Content: "미용 서비스를 이용했는데 너무 만족스러웠어요. 강아지도 스트레스 받지 않고 편안하게 미용을 마쳤네요. 다음에도 또 이용할 예정입니다.", Rating: 4, IsAnonymous: true},
	}
	for _, r := range reviews {
		s.CreateReview(r)
	}
}
