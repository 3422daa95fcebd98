package doctor

import "github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"

// CanModify reports whether the principal owns the doctor. Doctors are
// globally readable, so a failed write check is reported as an explicit
// denial rather than a not-found.
func CanModify(principal auth.Principal, d *Doctor) bool {
	return d.CreatedBy == principal.ID
}
