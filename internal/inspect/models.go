package inspect

import (
	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/risk"
)

// Report is the full inspection result for one URL, printed to stdout
// as JSON or YAML.
type Report struct {
	URL       string               `json:"url" yaml:"url"`
	Features  models.FeatureRecord `json:"features" yaml:"features"`
	RiskScore float64              `json:"risk_score" yaml:"risk_score"`
	RiskLevel string               `json:"risk_level" yaml:"risk_level"`
	Factors   map[string]float64   `json:"risk_factors" yaml:"risk_factors"`
	Analysis  risk.Analysis        `json:"analysis" yaml:"analysis"`
	Insights  risk.Insights        `json:"insights" yaml:"insights"`
}
