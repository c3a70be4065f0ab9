package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// BenefitsConsoleFormatter formats the benefits estimate for console
type BenefitsConsoleFormatter struct{}

func (bf BenefitsConsoleFormatter) Name() string { return "console" }

func (bf BenefitsConsoleFormatter) FormatBenefitReport(report *domain.BenefitReport) string {
	var buf bytes.Buffer
	p := report.Profile

	fmt.Fprintln(&buf, "VETERAN BENEFITS ESTIMATE")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "Rank: %s | Years of Service: %d | State: %s | Disability Rating: %d%%\n",
		strings.ToUpper(p.Rank), p.YearsOfService, p.State, p.DisabilityRating)
	fmt.Fprintln(&buf)

	for _, b := range report.Benefits {
		fmt.Fprintln(&buf, b.Name)
		fmt.Fprintf(&buf, "  %s\n", b.Description)
		fmt.Fprintf(&buf, "  Eligibility: %s\n", b.Eligibility)
		if b.Monthly != nil {
			fmt.Fprintf(&buf, "  Estimated:   %s/month\n", FormatCurrency(*b.Monthly))
		}
		if b.Percent != nil {
			fmt.Fprintf(&buf, "  Coverage:    %d%%\n", *b.Percent)
		}
		fmt.Fprintln(&buf)
	}

	return buf.String()
}
