package service

import (
	"errors"
	"testing"

	"github.com/clicktally/clicktally/internal/repository"
	"github.com/google/uuid"
)

func TestCreateAffiliate(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewAffiliateService(repository.NewAffiliateRepository(db))

	name := "Acme Media " + uuid.NewString()
	affiliate, err := svc.CreateAffiliate("  " + name + "  ")
	if err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	if affiliate.ID == "" {
		t.Fatalf("affiliate id should not be empty")
	}
	if affiliate.Name != name {
		t.Fatalf("affiliate name want %q got %q", name, affiliate.Name)
	}

	got, err := svc.GetAffiliate(affiliate.ID)
	if err != nil {
		t.Fatalf("get affiliate failed: %v", err)
	}
	if got.Name != name {
		t.Fatalf("fetched affiliate name want %q got %q", name, got.Name)
	}
}

func TestCreateAffiliateEmptyName(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewAffiliateService(repository.NewAffiliateRepository(db))

	if _, err := svc.CreateAffiliate("   "); !errors.Is(err, ErrAffiliateNameRequired) {
		t.Fatalf("want ErrAffiliateNameRequired got %v", err)
	}
}

func TestGetAffiliateNotFound(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewAffiliateService(repository.NewAffiliateRepository(db))

	if _, err := svc.GetAffiliate(uuid.NewString()); !errors.Is(err, ErrAffiliateNotFound) {
		t.Fatalf("want ErrAffiliateNotFound got %v", err)
	}
}

func TestListAffiliatesContainsCreated(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewAffiliateService(repository.NewAffiliateRepository(db))

	affiliate := createTestAffiliate(t, db, "listed-aff-"+uuid.NewString())
	list, err := svc.ListAffiliates()
	if err != nil {
		t.Fatalf("list affiliates failed: %v", err)
	}
	found := false
	for _, a := range list {
		if a.ID == affiliate.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("created affiliate %s missing from list", affiliate.ID)
	}
}

func TestCreateCampaignEmptyName(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewCampaignService(repository.NewCampaignRepository(db))

	if _, err := svc.CreateCampaign(""); !errors.Is(err, ErrCampaignNameRequired) {
		t.Fatalf("want ErrCampaignNameRequired got %v", err)
	}
}

func TestCreateCampaign(t *testing.T) {
	db, _, _ := setupTrackingTest(t)
	svc := NewCampaignService(repository.NewCampaignRepository(db))

	name := "Spring Sale " + uuid.NewString()
	campaign, err := svc.CreateCampaign(name)
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if campaign.ID == "" || campaign.Name != name {
		t.Fatalf("campaign fields mismatch: %+v", campaign)
	}
}
