package service

import (
	"testing"
	"time"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTrackingTest(t *testing.T) (*gorm.DB, *ClickService, *PostbackService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Affiliate{}, &models.Campaign{}, &models.Click{}, &models.Conversion{}); err != nil {
		t.Fatalf("migrate tracking tables failed: %v", err)
	}

	affiliateRepo := repository.NewAffiliateRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	clickRepo := repository.NewClickRepository(db)
	conversionRepo := repository.NewConversionRepository(db)

	clickService := NewClickService(clickRepo, affiliateRepo, campaignRepo, 0)
	postbackService := NewPostbackService(conversionRepo, clickRepo, "")
	return db, clickService, postbackService
}

func createTestAffiliate(t *testing.T, db *gorm.DB, name string) *models.Affiliate {
	t.Helper()
	svc := NewAffiliateService(repository.NewAffiliateRepository(db))
	affiliate, err := svc.CreateAffiliate(name)
	if err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	return affiliate
}

func createTestCampaign(t *testing.T, db *gorm.DB, name string) *models.Campaign {
	t.Helper()
	svc := NewCampaignService(repository.NewCampaignRepository(db))
	campaign, err := svc.CreateCampaign(name)
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	return campaign
}

func createTestClickAt(t *testing.T, db *gorm.DB, affiliateID, campaignID, clickID string, createdAt time.Time) *models.Click {
	t.Helper()
	click := &models.Click{
		ClickID:     clickID,
		AffiliateID: affiliateID,
		CampaignID:  campaignID,
		CreatedAt:   createdAt,
	}
	if err := db.Create(click).Error; err != nil {
		t.Fatalf("create click failed: %v", err)
	}
	return click
}

func countClicks(t *testing.T, db *gorm.DB, affiliateID string) int64 {
	t.Helper()
	var total int64
	if err := db.Model(&models.Click{}).Where("affiliate_id = ?", affiliateID).Count(&total).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	return total
}

func countConversions(t *testing.T, db *gorm.DB, clickID string) int64 {
	t.Helper()
	var total int64
	if err := db.Model(&models.Conversion{}).Where("click_id = ?", clickID).Count(&total).Error; err != nil {
		t.Fatalf("count conversions failed: %v", err)
	}
	return total
}
