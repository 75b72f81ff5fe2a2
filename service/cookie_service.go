package service

import (
	"time"

	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/repository"
)

// CookieService stores and retrieves the login session each platform's
// browser context is seeded with.
type CookieService struct {
	cookieRepo repository.CookieRepository
}

func NewCookieService(cookieRepo repository.CookieRepository) *CookieService {
	return &CookieService{cookieRepo: cookieRepo}
}

// GetCookieValueByPlatform returns the stored cookie JSON for a platform,
// empty when never captured or cleared.
func (s *CookieService) GetCookieValueByPlatform(platform model.Platform) (string, error) {
	cookie, err := s.cookieRepo.FindByPlatform(string(platform))
	if err != nil {
		return "", err
	}
	if cookie == nil {
		return "", nil
	}
	return cookie.CookieValue, nil
}

// SaveOrUpdateCookie upserts the platform's cookie row.
func (s *CookieService) SaveOrUpdateCookie(platform model.Platform, cookieValue, remark string) error {
	existing, err := s.cookieRepo.FindByPlatform(string(platform))
	if err != nil {
		return err
	}

	now := time.Now()
	if existing != nil {
		existing.CookieValue = cookieValue
		existing.Remark = remark
		existing.UpdatedAt = now
		return s.cookieRepo.Update(existing)
	}

	return s.cookieRepo.Save(&model.CookieEntity{
		Platform:    string(platform),
		CookieValue: cookieValue,
		Remark:      remark,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// ClearCookieByPlatform blanks a stale session, recording why in remark.
func (s *CookieService) ClearCookieByPlatform(platform model.Platform, remark string) error {
	return s.cookieRepo.ClearCookieValue(string(platform), remark)
}
