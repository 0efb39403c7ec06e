package checkout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlansDefaultCatalog(t *testing.T) {
	plans, err := LoadPlans("")
	if err != nil {
		t.Fatalf("load default plans: %v", err)
	}
	if len(plans) == 0 {
		t.Fatal("default catalog is empty")
	}
	if plans[0].ID != "pro" || plans[0].Credits != 50 {
		t.Fatalf("unexpected default plan %+v", plans[0])
	}
}

func TestLoadPlansFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	content := `
plans:
  - id: starter
    title: Starter
    price_id: pri_123
    credits: 20
    price_usd: "9"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plans file: %v", err)
	}

	plans, err := LoadPlans(path)
	if err != nil {
		t.Fatalf("load plans: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "starter" || plans[0].Credits != 20 {
		t.Fatalf("unexpected plans %+v", plans)
	}
}

func TestLoadPlansMissingFileFallsBack(t *testing.T) {
	plans, err := LoadPlans(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected fallback to default catalog, got %v", err)
	}
	if len(plans) == 0 {
		t.Fatal("fallback catalog is empty")
	}
}

func TestLoadPlansRejectsNonPositiveCredits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	content := `
plans:
  - id: broken
    credits: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plans file: %v", err)
	}
	if _, err := LoadPlans(path); err == nil {
		t.Fatal("expected error for zero-credit plan")
	}
}

func TestPlanForPrice(t *testing.T) {
	plans := []Plan{
		{ID: "pro", PriceID: "pri_pro", Credits: 50},
		{ID: "starter", PriceID: "pri_starter", Credits: 20},
	}

	if plan, ok := PlanForPrice(plans, "pri_starter"); !ok || plan.ID != "starter" {
		t.Fatalf("expected starter, got %+v ok=%v", plan, ok)
	}
	if _, ok := PlanForPrice(plans, "pri_unknown"); ok {
		t.Fatal("unknown price id must not match")
	}
	if _, ok := PlanForPrice(plans, ""); ok {
		t.Fatal("empty price id must not match")
	}
}
