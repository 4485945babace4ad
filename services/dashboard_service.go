package services

import (
	"context"

	"foundation-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardCounts struct {
	Slides              int64 `json:"slides"`
	News                int64 `json:"news"`
	Programs            int64 `json:"programs"`
	Staff               int64 `json:"staff"`
	Teachers            int64 `json:"teachers"`
	Partners            int64 `json:"partners"`
	PrideTopics         int64 `json:"pride_topics"`
	Donations           int64 `json:"donations"`
	Students            int64 `json:"students"`
	Scholarships        int64 `json:"scholarships"`
	PendingScholarships int64 `json:"pending_scholarships"`
	Messages            int64 `json:"messages"`
	UnreadMessages      int64 `json:"unread_messages"`
}

func (s *DashboardService) Counts(ctx context.Context) (*DashboardCounts, error) {
	db := s.DB.WithContext(ctx)
	out := &DashboardCounts{}

	counts := []struct {
		model any
		dst   *int64
		where string
		arg   any
	}{
		{&models.SlideImage{}, &out.Slides, "", nil},
		{&models.NewsItem{}, &out.News, "", nil},
		{&models.ProgramImage{}, &out.Programs, "", nil},
		{&models.Staff{}, &out.Staff, "", nil},
		{&models.Teacher{}, &out.Teachers, "", nil},
		{&models.Partner{}, &out.Partners, "", nil},
		{&models.PrideTopic{}, &out.PrideTopics, "", nil},
		{&models.Donation{}, &out.Donations, "", nil},
		{&models.Student{}, &out.Students, "", nil},
		{&models.ScholarshipApplication{}, &out.Scholarships, "", nil},
		{&models.ScholarshipApplication{}, &out.PendingScholarships, "status = ?", models.ScholarshipPending},
		{&models.ContactMessage{}, &out.Messages, "", nil},
		{&models.ContactMessage{}, &out.UnreadMessages, "status = ?", models.MessageUnread},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.arg)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return out, nil
}
