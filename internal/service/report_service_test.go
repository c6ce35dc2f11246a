package service

import (
	"errors"
	"testing"

	"github.com/clicktally/clicktally/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		repository.NewReportRepository(db),
		repository.NewAffiliateRepository(db),
		repository.NewClickRepository(db),
		repository.NewConversionRepository(db),
	)
}

// 汇总口径覆盖伙伴名下全部点击，与逐条查询的最早点击口径不同
func TestGetAffiliateSummary(t *testing.T) {
	db, clicks, postbacks := setupTrackingTest(t)
	reports := newReportService(db)

	affiliate := createTestAffiliate(t, db, "summary-aff-"+uuid.NewString())
	campaign := createTestCampaign(t, db, "summary-camp-"+uuid.NewString())

	var tokens []string
	for i := 0; i < 3; i++ {
		click, err := clicks.RecordClick(RecordClickInput{
			AffiliateID: affiliate.ID,
			CampaignID:  campaign.ID,
		})
		if err != nil {
			t.Fatalf("record click %d failed: %v", i, err)
		}
		tokens = append(tokens, click.ClickID)
	}

	inputs := []RecordConversionInput{
		{AffiliateID: affiliate.ID, ClickID: tokens[0], Amount: "10.00"},
		{AffiliateID: affiliate.ID, ClickID: tokens[1], Amount: "15.50"},
		{AffiliateID: affiliate.ID, ClickID: tokens[2], Amount: "5.00", Currency: "EUR"},
		{AffiliateID: affiliate.ID, ClickID: tokens[2]}, // 线索类转化，无金额
	}
	for i, input := range inputs {
		if _, err := postbacks.RecordConversion(input); err != nil {
			t.Fatalf("record conversion %d failed: %v", i, err)
		}
	}

	summary, err := reports.GetAffiliateSummary(affiliate.ID)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if summary.AffiliateID != affiliate.ID || summary.AffiliateName != affiliate.Name {
		t.Fatalf("summary identity mismatch: %+v", summary)
	}
	if summary.ClickCount != 3 {
		t.Fatalf("click count want 3 got %d", summary.ClickCount)
	}
	if summary.ConversionCount != 4 {
		t.Fatalf("conversion count want 4 got %d", summary.ConversionCount)
	}

	totals := map[string]string{}
	for _, item := range summary.Revenue {
		totals[item.Currency] = item.Total
	}
	if totals["USD"] != "25.50" {
		t.Fatalf("USD revenue want 25.50 got %q", totals["USD"])
	}
	if totals["EUR"] != "5.00" {
		t.Fatalf("EUR revenue want 5.00 got %q", totals["EUR"])
	}
}

func TestGetAffiliateSummaryUnknownAffiliate(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	reports := newReportService(db)

	if _, err := reports.GetAffiliateSummary(uuid.NewString()); !errors.Is(err, ErrAffiliateNotFound) {
		t.Fatalf("want ErrAffiliateNotFound got %v", err)
	}
}

func TestGetAffiliateSummaryNoActivity(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	reports := newReportService(db)

	affiliate := createTestAffiliate(t, db, "idle-aff-"+uuid.NewString())
	summary, err := reports.GetAffiliateSummary(affiliate.ID)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if summary.ClickCount != 0 || summary.ConversionCount != 0 {
		t.Fatalf("idle affiliate counts want 0/0 got %d/%d", summary.ClickCount, summary.ConversionCount)
	}
	if len(summary.Revenue) != 0 {
		t.Fatalf("idle affiliate revenue want empty got %+v", summary.Revenue)
	}
}
