package usecase

import (
	"regexp"
	"strings"

	"conversational-assistant/internal/extract"
	"conversational-assistant/pkg/petfinder"
)

var (
	sizePatterns = []struct {
		re   *regexp.Regexp
		size string
	}{
		{regexp.MustCompile(`(?i)\b(?:tiny|small|little)\b`), "small"},
		{regexp.MustCompile(`(?i)\bmedium(?:[ -]sized)?\b`), "medium"},
		{regexp.MustCompile(`(?i)\b(?:extra[ -]large|xl|giant|huge)\b`), "xlarge"},
		{regexp.MustCompile(`(?i)\b(?:large|big)\b`), "large"},
	}

	agePatterns = []struct {
		re  *regexp.Regexp
		age string
	}{
		{regexp.MustCompile(`(?i)\b(?:baby|babies|puppy|puppies|kitten(?:s)?)\b`), "baby"},
		{regexp.MustCompile(`(?i)\byoung\b`), "young"},
		{regexp.MustCompile(`(?i)\b(?:senior|older|elderly)\b`), "senior"},
		{regexp.MustCompile(`(?i)\badult\b`), "adult"},
	}

	malePattern   = regexp.MustCompile(`(?i)\b(?:male|boy)\b`)
	femalePattern = regexp.MustCompile(`(?i)\b(?:female|girl)\b`)

	goodWithKidsPattern = regexp.MustCompile(`(?i)\bgood\s+with\s+(?:kids|children)\b`)
	goodWithDogsPattern = regexp.MustCompile(`(?i)\bgood\s+with\s+dogs\b`)
	goodWithCatsPattern = regexp.MustCompile(`(?i)\bgood\s+with\s+cats\b`)

	// goodWithAnyPattern is removed before species extraction so "a cat
	// good with dogs" searches for cats, not dogs.
	goodWithAnyPattern = regexp.MustCompile(`(?i)\bgood\s+with\s+(?:kids|children|dogs|cats)\b`)
)

// buildSearchParams turns a message into Petfinder search parameters.
// The animal word itself is never allowed to leak into the location: a
// location capture that still contains the species term is discarded.
func buildSearchParams(text, sessionLocation string) petfinder.SearchParams {
	params := petfinder.SearchParams{Limit: extract.DefaultSearchLimit}

	animal, found := extract.ExtractAnimalType(goodWithAnyPattern.ReplaceAllString(text, ""))
	if found {
		params.Type = string(animal)
	}

	if loc, ok := extract.ExtractLocation(text); ok && !containsAnimalWord(loc) {
		params.Location = loc
		params.DistanceMiles = extract.DefaultSearchRadiusMiles
	} else if sessionLocation != "" {
		params.Location = sessionLocation
		params.DistanceMiles = extract.DefaultSearchRadiusMiles
	}

	for _, p := range sizePatterns {
		if p.re.MatchString(text) {
			params.Size = p.size
			break
		}
	}
	for _, p := range agePatterns {
		if p.re.MatchString(text) {
			params.Age = p.age
			break
		}
	}

	if femalePattern.MatchString(text) {
		params.Gender = "female"
	} else if malePattern.MatchString(text) {
		params.Gender = "male"
	}

	params.GoodWithChildren = goodWithKidsPattern.MatchString(text)
	params.GoodWithDogs = goodWithDogsPattern.MatchString(text)
	params.GoodWithCats = goodWithCatsPattern.MatchString(text)

	return params
}

func containsAnimalWord(loc string) bool {
	for _, f := range strings.Fields(strings.ToLower(loc)) {
		if _, ok := extract.ExtractAnimalType(f); ok {
			return true
		}
	}
	return false
}
