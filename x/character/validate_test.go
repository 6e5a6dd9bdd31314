package character

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageURL(t *testing.T) {

	assert.True(t, IsValidImageURL("https://x.com/a.png"))
	assert.True(t, IsValidImageURL("https://x.com/a.jpg"))
	assert.True(t, IsValidImageURL("https://x.com/a.jpeg"))
	assert.True(t, IsValidImageURL("https://x.com/a.PNG"))
	assert.True(t, IsValidImageURL("HTTPS://x.com/a.jpg"))

	assert.False(t, IsValidImageURL(""))
	assert.False(t, IsValidImageURL("http://x.com/a.png"))
	assert.False(t, IsValidImageURL("https://x.com/a.gif"))
	assert.False(t, IsValidImageURL("https://x.com/a.png?size=large"))
	assert.False(t, IsValidImageURL("ftp://x.com/a.png"))

	// exactly at the length bound
	padding := strings.Repeat("a", maxImageURLLength-len("https://x.com/")-len(".png"))
	longest := "https://x.com/" + padding + ".png"
	assert.Len(t, longest, maxImageURLLength)
	assert.True(t, IsValidImageURL(longest))

	// one past the bound
	tooLong := "https://x.com/a" + padding + ".png"
	assert.Len(t, tooLong, maxImageURLLength+1)
	assert.False(t, IsValidImageURL(tooLong))
}

func TestValidateDemographics(t *testing.T) {

	female := "female"
	junior := "junior"
	bogus := "martian"

	assert.NoError(t, validateDemographics(nil, nil, nil, nil))
	assert.NoError(t, validateDemographics(&female, nil, nil, &junior))

	err := validateDemographics(&bogus, nil, nil, nil)
	assert.Error(t, err)

	err = validateDemographics(nil, nil, nil, &bogus)
	assert.Error(t, err)
}
