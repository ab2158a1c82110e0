package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const referralPrefix = "Z"

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewReferralCode returns "Z" followed by five digits, the last one a Luhn check digit.
func NewReferralCode() string {
	return referralPrefix + goluhn.Generate(5)
}

func IsReferralCode(code string) bool {
	digits, ok := strings.CutPrefix(code, referralPrefix)
	return ok && len(digits) == 5 && IsLuna(digits)
}
