package extract_test

import (
	"testing"

	"conversational-assistant/internal/extract"
)

func TestExtractAnimalType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  extract.AnimalCategory
		ok    bool
	}{
		{"Puppies", "puppies near me", extract.AnimalDog, true},
		{"Dog Singular", "I want to adopt a dog", extract.AnimalDog, true},
		{"Kittens", "any kittens for adoption?", extract.AnimalCat, true},
		{"Bunny", "looking for a bunny", extract.AnimalRabbit, true},
		{"Guinea Pig", "guinea pig adoption", extract.AnimalSmallFurry, true},
		{"Parrot", "parrots available nearby", extract.AnimalBird, true},
		{"Pony", "my daughter wants a pony", extract.AnimalHorse, true},
		{"Goat", "can I adopt a goat", extract.AnimalBarnyard, true},
		{"Turtle", "turtles up for adoption", extract.AnimalScalesFinsOther, true},
		{"Generic Pet Defaults To Dog", "looking for a pet", extract.AnimalDog, true},
		{"Generic Animal Defaults To Dog", "adopt an animal", extract.AnimalDog, true},
		{"No Animal", "stock tips", "", false},
		{"Case Insensitive", "ADOPT A CAT", extract.AnimalCat, true},
		// Mapping order, not input order, breaks ties: dog terms are
		// checked before cat terms.
		{"Mapping Order Tie Break", "cat or dog?", extract.AnimalDog, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extract.ExtractAnimalType(tc.input)
			if ok != tc.ok {
				t.Fatalf("ExtractAnimalType(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("ExtractAnimalType(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
