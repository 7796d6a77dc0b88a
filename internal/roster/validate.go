package roster

import (
	"fmt"
	"strings"

	"github.com/adhilcr/exam-seating/internal/model"
)

// ValidateNormalized checks normalized registrations for the defects that
// historically slipped through spreadsheet exports: blank identifiers,
// non-canonical subject codes and duplicate registrations.  The first
// problem found is returned.
func ValidateNormalized(regs []model.Registration) error {
	seen := make(map[string]bool, len(regs))
	for _, r := range regs {
		if r.RegisterNo == 0 {
			return fmt.Errorf("normalized data contains empty register_no")
		}
		code := strings.TrimSpace(r.SubjectCode)
		if code == "" {
			return fmt.Errorf("normalized data contains blank subject_code (register_no %d)", r.RegisterNo)
		}
		if strings.HasSuffix(code, ".0") {
			return fmt.Errorf("subject_code %q contains Excel-style '.0' value (data not canonicalized)", code)
		}
		key := fmt.Sprintf("%d/%s", r.RegisterNo, code)
		if seen[key] {
			return fmt.Errorf("duplicate (register_no, subject_code) pair: %d/%s", r.RegisterNo, code)
		}
		seen[key] = true
	}
	return nil
}
