package domain

import "strings"

const (
	minPasswordLength = 8
)

// PasswordRule identifies a single password-policy rule.
type PasswordRule string

const (
	RuleMinLength      PasswordRule = "min_length"
	RuleUppercase      PasswordRule = "uppercase"
	RuleLowercase      PasswordRule = "lowercase"
	RuleDigit          PasswordRule = "digit"
	RuleCommonPassword PasswordRule = "common_password"
)

// commonPasswords is checked case-insensitively as an exact match, so a
// character-class-compliant variant like "Password123" is still rejected.
var commonPasswords = []string{
	"password", "password123", "12345678", "qwerty123", "letmein1",
	"monkey", "dragon", "trustno1", "baseball", "iloveyou",
	"master", "sunshine", "ashley", "abc123", "1234567890",
}

var passwordRuleMessages = map[PasswordRule]string{
	RuleMinLength:      "Password must be at least 8 characters long",
	RuleUppercase:      "Password must contain at least one uppercase letter",
	RuleLowercase:      "Password must contain at least one lowercase letter",
	RuleDigit:          "Password must contain at least one number",
	RuleCommonPassword: "Password is too common. Please choose a stronger password",
}

// PasswordPolicyResult reports every violated rule, not just the first.
// Returning the full set improves the caller's correction loop.
type PasswordPolicyResult struct {
	Violated []PasswordRule
}

// Accepted reports whether the candidate passed every rule.
func (r PasswordPolicyResult) Accepted() bool {
	return len(r.Violated) == 0
}

// Messages returns the user-facing text for each violated rule,
// in the order the rules were evaluated.
func (r PasswordPolicyResult) Messages() []string {
	out := make([]string, 0, len(r.Violated))
	for _, rule := range r.Violated {
		out = append(out, passwordRuleMessages[rule])
	}
	return out
}

// ValidatePassword checks a candidate password against the registration
// policy. Pure function, no I/O.
func ValidatePassword(password string) PasswordPolicyResult {
	var result PasswordPolicyResult

	if len(password) < minPasswordLength {
		result.Violated = append(result.Violated, RuleMinLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		result.Violated = append(result.Violated, RuleUppercase)
	}
	if !hasLower {
		result.Violated = append(result.Violated, RuleLowercase)
	}
	if !hasDigit {
		result.Violated = append(result.Violated, RuleDigit)
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if lowered == common {
			result.Violated = append(result.Violated, RuleCommonPassword)
			break
		}
	}

	return result
}
