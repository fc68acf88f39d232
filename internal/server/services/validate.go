package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dailylog/internal/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Mode selects how LinkOrCreate treats an unknown email.
type Mode string

const (
	ModeSignup Mode = "signup"
	ModeLogin  Mode = "login"
)

// bcrypt only looks at the first 72 bytes of a secret.
const maxSecretLen = 72

var notBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "cannot be blank"),
)

// required rejects empty and whitespace-only strings, then applies rules.
func required(rules ...validation.Rule) []validation.Rule {
	return append([]validation.Rule{validation.Required, notBlank}, rules...)
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrValidation, err)
}

type registerInput struct {
	Email       string
	DisplayName string
	Secret      string
}

func (in registerInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Email, required(is.EmailFormat, validation.Length(0, 254))...),
		validation.Field(&in.DisplayName, required(validation.Length(1, 64))...),
		validation.Field(&in.Secret, required(validation.Length(1, maxSecretLen))...),
	))
}

type resetInput struct {
	Email         string
	NewSecret     string
	ConfirmSecret string
}

func (in resetInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Email, required()...),
		validation.Field(&in.NewSecret, required(validation.Length(1, maxSecretLen))...),
		validation.Field(&in.ConfirmSecret, required(
			validation.In(in.NewSecret).Error("must match the new secret"))...),
	))
}

// ExternalProfile is the identity asserted by an external provider.
type ExternalProfile struct {
	Provider    string
	SubjectID   string
	Email       string
	DisplayName string
	AvatarURL   string
}

type linkInput struct {
	ExternalProfile
	Mode Mode
}

func (in linkInput) Validate() error {
	return invalid(validation.ValidateStruct(&in,
		validation.Field(&in.Provider, required()...),
		validation.Field(&in.SubjectID, required()...),
		validation.Field(&in.Email, required(is.EmailFormat)...),
		validation.Field(&in.DisplayName, validation.Length(0, 64)),
		validation.Field(&in.Mode, validation.Required, validation.In(ModeSignup, ModeLogin)),
	))
}
