package extract

import "regexp"

// AnimalCategory is one of the canonical adoption search categories.
type AnimalCategory string

const (
	AnimalDog             AnimalCategory = "dog"
	AnimalCat             AnimalCategory = "cat"
	AnimalRabbit          AnimalCategory = "rabbit"
	AnimalBird            AnimalCategory = "bird"
	AnimalSmallFurry      AnimalCategory = "small-furry"
	AnimalHorse           AnimalCategory = "horse"
	AnimalBarnyard        AnimalCategory = "barnyard"
	AnimalScalesFinsOther AnimalCategory = "scales-fins-other"
)

type animalTerm struct {
	re       *regexp.Regexp
	category AnimalCategory
}

func term(pattern string, cat AnimalCategory) animalTerm {
	return animalTerm{
		re:       regexp.MustCompile(`(?i)\b(?:` + pattern + `)\b`),
		category: cat,
	}
}

// animalTerms maps singular/plural/colloquial animal words to canonical
// categories. The slice order is the tie-break: the first term in this
// list that appears anywhere in the message wins, regardless of where it
// sits in the input.
var animalTerms = []animalTerm{
	term(`dogs?|puppy|puppies|doggy|pooch`, AnimalDog),
	term(`cats?|kitten(?:s)?|kitty|kitties`, AnimalCat),
	term(`rabbits?|bunny|bunnies`, AnimalRabbit),
	term(`birds?|parrots?|parakeets?|cockatiels?`, AnimalBird),
	term(`hamsters?|guinea pigs?|gerbils?|ferrets?|chinchillas?|hedgehogs?|mice|rats?`, AnimalSmallFurry),
	term(`horses?|pony|ponies`, AnimalHorse),
	term(`pigs?|goats?|sheep|cows?|chickens?|ducks?`, AnimalBarnyard),
	term(`fish|snakes?|lizards?|turtles?|geckos?|iguanas?|frogs?`, AnimalScalesFinsOther),
}

var genericPetPattern = regexp.MustCompile(`(?i)\b(?:pets?|animals?)\b`)

// ExtractAnimalType finds the adoption category a message asks about.
// A generic "pet"/"animal" mention with no named species defaults to dog,
// the most common search.
func ExtractAnimalType(text string) (AnimalCategory, bool) {
	for _, t := range animalTerms {
		if t.re.MatchString(text) {
			return t.category, true
		}
	}
	if genericPetPattern.MatchString(text) {
		return AnimalDog, true
	}
	return "", false
}
