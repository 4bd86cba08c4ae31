package domain

const (
	minUsernameLength = 3
	maxUsernameLength = 50
)

// ValidateUsername enforces the account-identifier format: 3-50 characters,
// leading letter, then letters, digits, and underscore only. Constraining the
// input space up front reduces the enumeration surface before any database
// lookup happens.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength {
		return NewValidationError("Username must be at least 3 characters")
	}
	if len(username) > maxUsernameLength {
		return NewValidationError("Username must be less than 50 characters")
	}
	if !usernameShape(username) {
		return NewValidationError("Username must start with a letter and contain only letters, numbers, and underscores")
	}
	return nil
}

func usernameShape(username string) bool {
	for i, r := range username {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 {
			if !isLetter {
				return false
			}
			continue
		}
		if !isLetter && !(r >= '0' && r <= '9') && r != '_' {
			return false
		}
	}
	return true
}
