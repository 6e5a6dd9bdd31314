package character

import (
	"regexp"
	"slices"

	"github.com/JayByRP/shield/core"
)

const maxImageURLLength = 2048

var imageURLPattern = regexp.MustCompile(`(?i)^https://.*\.(jpg|jpeg|png)$`)

// IsValidImageURL reports whether url is an https URL pointing at a
// jpg, jpeg or png, no longer than 2048 characters. Pure predicate.
func IsValidImageURL(url string) bool {
	if url == "" {
		return false
	}
	if len(url) > maxImageURLLength {
		return false
	}
	return imageURLPattern.MatchString(url)
}

func validateTag(field string, value *string, vocabulary []string) error {
	if value == nil {
		return nil
	}
	if !slices.Contains(vocabulary, *value) {
		return core.NewErrorInvalidRequest("unknown " + field + ": " + *value)
	}
	return nil
}

func validateDemographics(gender, orientation, program, year *string) error {
	if err := validateTag("gender", gender, core.Genders); err != nil {
		return err
	}
	if err := validateTag("orientation", orientation, core.Orientations); err != nil {
		return err
	}
	if err := validateTag("program", program, core.Programs); err != nil {
		return err
	}
	return validateTag("year", year, core.Years)
}
