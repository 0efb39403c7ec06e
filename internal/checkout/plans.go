// Package checkout bridges the hosted payment provider (Paddle) to the
// credit ledger. Plans describe what a completed checkout grants; the
// webhook turns a signed provider notification into exactly one grant.
package checkout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is one purchasable credit package.
type Plan struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	PriceID     string `yaml:"price_id" json:"price_id"` // Paddle price id
	Credits     int    `yaml:"credits" json:"credits"`
	PriceUSD    string `yaml:"price_usd" json:"price_usd"`
}

type planFile struct {
	Plans []Plan `yaml:"plans"`
}

// defaultPlansYAML ships the single Pro package; a plans.yaml next to the
// binary overrides it.
const defaultPlansYAML = `
plans:
  - id: pro
    title: copy2card Pro
    description: 50 download credits - no watermark - priority support
    price_id: ""
    credits: 50
    price_usd: "19"
`

// LoadPlans reads the plan catalog from path, falling back to the embedded
// default when the file does not exist.
func LoadPlans(path string) ([]Plan, error) {
	raw := []byte(defaultPlansYAML)
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			raw = data
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read plans file %s: %w", path, err)
		}
	}

	var file planFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}
	if len(file.Plans) == 0 {
		return nil, fmt.Errorf("plans: catalog is empty")
	}
	for _, p := range file.Plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plans: plan without id")
		}
		if p.Credits <= 0 {
			return nil, fmt.Errorf("plans: plan %q must grant a positive credit amount", p.ID)
		}
	}
	return file.Plans, nil
}

// PlanForPrice finds the plan sold under a Paddle price id.
func PlanForPrice(plans []Plan, priceID string) (Plan, bool) {
	if priceID == "" {
		return Plan{}, false
	}
	for _, p := range plans {
		if p.PriceID == priceID {
			return p, true
		}
	}
	return Plan{}, false
}
