package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sudharsan-ak/job-autopilot/model"
)

// CookieRepository persists captured login cookies per platform.
type CookieRepository interface {
	FindByPlatform(platform string) (*model.CookieEntity, error)
	Save(cookie *model.CookieEntity) error
	Update(cookie *model.CookieEntity) error
	ClearCookieValue(platform, remark string) error
}

type cookieRepository struct {
	db *gorm.DB
}

func NewCookieRepository(db *gorm.DB) CookieRepository {
	return &cookieRepository{db: db}
}

// FindByPlatform returns the newest cookie row for a platform, nil when
// none has been captured yet.
func (r *cookieRepository) FindByPlatform(platform string) (*model.CookieEntity, error) {
	var cookie model.CookieEntity
	result := r.db.Where("platform = ?", platform).
		Order("updated_at DESC").
		First(&cookie)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &cookie, nil
}

func (r *cookieRepository) Save(cookie *model.CookieEntity) error {
	return r.db.Create(cookie).Error
}

func (r *cookieRepository) Update(cookie *model.CookieEntity) error {
	return r.db.Save(cookie).Error
}

// ClearCookieValue blanks a platform's cookie after it stops working,
// keeping the row so the remark records why.
func (r *cookieRepository) ClearCookieValue(platform, remark string) error {
	return r.db.Model(&model.CookieEntity{}).
		Where("platform = ?", platform).
		Updates(map[string]interface{}{
			"cookie_value": "",
			"remark":       remark,
			"updated_at":   time.Now(),
		}).Error
}
