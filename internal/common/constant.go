// Package common contains shared constants and sentinel errors used across
// dailylog components.
package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// OTP bounds. Codes are always six decimal digits.
const (
	OTPMin = 100000
	OTPMax = 999999
)

// DefaultOTPValidity is how long a freshly issued one-time code stays usable.
const DefaultOTPValidity = 10 * time.Minute
