package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/zearn/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("payout_method", func(fl validator.FieldLevel) bool {
		return domain.IsPayoutMethod(fl.Field().String())
	})
	_ = validate.RegisterValidation("referral_code", func(fl validator.FieldLevel) bool {
		return IsReferralCode(fl.Field().String())
	})
	return validate
}

// Struct validates s against its `validate` tags and flattens the
// failures into a single readable error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
