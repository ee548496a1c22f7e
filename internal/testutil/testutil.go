// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fraudmatrix/internal/config"
)

// TestPassword is the shared password configured by TestConfig.
const TestPassword = "test-password"

// ScenarioCSV is a small fraud framework dataset. It has two Quick Wins,
// one Major Project, one Questionable and a Low business value row that
// the default domains never classify.
const ScenarioCSV = ` Scenario , Category ,Objective,Mechanic,Important aspects/ loopholes,Detection Rule & Signal,Must Have Data,Data Fields,Effort,Effort Reason,Complexity,Complexity Reason,Business Value,Business Value Reason,Feasibility,Feasibility Reason,"Benefit to Costco (severity, frequency & Value)"
Refund abuse,Returns,Catch serial refunders,Repeated returns without receipt,Receipt-less returns,>5 returns in 30 days,Returns log,member_id;sku;amount,Low,Existing data,Low,Simple rule,High,Large losses,High,Data available,High severity
Account takeover,Identity,Stop credential stuffing,Login bursts,Shared devices,Failed logins per device,Auth logs,device_id;ip,Medium,New pipeline,Medium,Joins,High,Direct fraud,High,Logs exist,
Gift card draining,Payments,Detect drained cards,Balance checks then spend,Online balance API,Balance checks per card,Gift card ledger,card_id;balance,High,Vendor data,High,Streaming,High,High value,Medium,Vendor dependency,
Coupon stacking,Promotions,Limit stacking,Multiple coupons per order,Stacking rules unclear,Coupons per basket,POS data,basket_id;coupon_id,High,Many systems,High,Cross-system,Medium,Moderate losses,Low,Hard to join,
Employee discount misuse,Internal,Find abuse,Discount on non-household,Shared cards,Discount frequency,HR data,employee_id,Low,Simple,Low,Simple,Low,Small losses,High,Easy,
`

// WriteScenarioCSV writes content to a temp file and returns its path.
func WriteScenarioCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fraud_framework.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write scenario csv: %v", err)
	}
	return path
}

// TestConfig returns a development config pointing at dataFile with the
// shared password set to TestPassword.
func TestConfig(dataFile string) *config.Config {
	return &config.Config{
		Env:               "development",
		ServerAddr:        ":0",
		BaseURL:           "http://localhost",
		DataFile:          dataFile,
		DashboardPassword: TestPassword,
		SessionSecret:     "test-secret-that-is-long-enough-for-production",
		SessionTTL:        time.Hour,
		RateLimitMax:      10000,
		SiteTitle:         "Fraud Framework Priority Matrix",
		SiteTagline:       "Click on any quadrant to explore scenarios in detail",
		SiteFooter:        "test footer",
		Matrix:            config.DefaultMatrixConfig(),
	}
}
