package validators

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"medicare-booking/internal/domain/entity"
)

// RuleError is a booking rule violation. The message is the localized text
// surfaced to the patient verbatim.
type RuleError struct {
	msg string
}

func (e *RuleError) Error() string {
	return e.msg
}

// IsRuleError reports whether err is a booking rule violation.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

var (
	ErrMissingDatetime  = &RuleError{msg: "เวลานัดห้ามว่าง"}
	ErrMissingDoctor    = &RuleError{msg: "กรุณาระบุชื่อแพทย์"}
	ErrInvalidVisitType = &RuleError{msg: "รูปแบบการพบแพทย์ไม่ถูกต้อง"}
	ErrInvalidPhone     = &RuleError{msg: "กรุณากรอกเบอร์โทรให้ถูกต้อง"}
	ErrSymptomsTooShort = &RuleError{msg: "กรุณาระบุอาการอย่างน้อย 5 อักขระ"}
	ErrInvalidInsurance = &RuleError{msg: "สิทธิ์การรักษาไม่ถูกต้อง"}
	ErrMissingPolicyID  = &RuleError{msg: "กรุณากรอกเลขกรมธรรม์/สิทธิ์ประกัน"}
	ErrInvalidDatetime  = &RuleError{msg: "รูปแบบเวลานัดไม่ถูกต้อง"}
)

const minSymptomRunes = 5

var phonePattern = regexp.MustCompile(`^[0-9+\-\s]{8,}$`)

// datetimeLayouts are the accepted forms of the requested appointment time,
// most specific first.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ValidateBooking checks the payload against the booking rules in fixed
// order and returns the first violation, or nil when the payload is valid.
// Pure and deterministic.
func ValidateBooking(p *entity.BookingPayload) error {
	if p.Datetime == "" {
		return ErrMissingDatetime
	}
	if p.DoctorName == "" {
		return ErrMissingDoctor
	}
	if p.VisitType != entity.VisitOnsite && p.VisitType != entity.VisitVideo {
		return ErrInvalidVisitType
	}
	if !phonePattern.MatchString(p.PhoneNumber) {
		return ErrInvalidPhone
	}
	// Symptoms are Thai free text, so count runes rather than bytes.
	if utf8.RuneCountInString(strings.TrimSpace(p.Symptoms)) < minSymptomRunes {
		return ErrSymptomsTooShort
	}
	switch p.Insurance {
	case entity.InsuranceSelfPay, entity.InsuranceUniversal, entity.InsuranceSocial, entity.InsurancePrivate:
	default:
		return ErrInvalidInsurance
	}
	if p.Insurance.RequiresPolicyID() && utf8.RuneCountInString(strings.TrimSpace(p.PolicyID)) < 3 {
		return ErrMissingPolicyID
	}
	if !parseableDatetime(p.Datetime) {
		return ErrInvalidDatetime
	}
	return nil
}

func parseableDatetime(s string) bool {
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
