package words

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// Difficulty selects a word pool and the score multiplier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Category identifies a word pool topic.
type Category string

const (
	CategoryAnimals     Category = "animals"
	CategoryCountries   Category = "countries"
	CategoryFoods       Category = "foods"
	CategoryFruits      Category = "fruits"
	CategoryVegetables  Category = "vegetables"
	CategoryColors      Category = "colors"
	CategorySports      Category = "sports"
	CategoryOccupations Category = "occupations"
	CategoryActions     Category = "actions"
	CategoryAdjectives  Category = "adjectives"
)

// categoryOrder fixes the menu order shown to players.
var categoryOrder = []Category{
	CategoryAnimals,
	CategoryCountries,
	CategoryFoods,
	CategoryFruits,
	CategoryVegetables,
	CategoryColors,
	CategorySports,
	CategoryOccupations,
	CategoryActions,
	CategoryAdjectives,
}

// Categories returns the categories in menu order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(value) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", value)
	}
}

func ParseCategory(value string) (Category, error) {
	category := Category(value)
	if !lo.Contains(categoryOrder, category) {
		return "", fmt.Errorf("unknown category %q", value)
	}
	return category, nil
}

// Random draws a uniformly random word for the category and difficulty.
func Random(category Category, difficulty Difficulty) (string, error) {
	pools, ok := bank[category]
	if !ok {
		return "", fmt.Errorf("unknown category %q", category)
	}
	pool, ok := pools[difficulty]
	if !ok || len(pool) == 0 {
		return "", fmt.Errorf("no words for category %q difficulty %q", category, difficulty)
	}
	return pool[rand.Intn(len(pool))], nil
}

// RandomCategory draws a uniformly random category.
func RandomCategory() Category {
	return categoryOrder[rand.Intn(len(categoryOrder))]
}

// RandomDifficulty draws a uniformly random difficulty.
func RandomDifficulty() Difficulty {
	return Difficulties[rand.Intn(len(Difficulties))]
}

// All words are uppercase ASCII; the guess keyboard works on A-Z.
var bank = map[Category]map[Difficulty][]string{
	CategoryAnimals: {
		DifficultyEasy:   {"CAT", "DOG", "COW", "PIG", "FOX", "BAT", "OWL", "BEE"},
		DifficultyMedium: {"RABBIT", "MONKEY", "DONKEY", "TURTLE", "PANDA", "CAMEL", "ZEBRA"},
		DifficultyHard:   {"ELEPHANT", "CROCODILE", "KANGAROO", "HEDGEHOG", "SQUIRREL", "RHINOCEROS"},
	},
	CategoryCountries: {
		DifficultyEasy:   {"EGYPT", "SPAIN", "CHINA", "INDIA", "JAPAN", "ITALY"},
		DifficultyMedium: {"BRAZIL", "CANADA", "FRANCE", "GERMANY", "MOROCCO", "TURKEY"},
		DifficultyHard:   {"AUSTRALIA", "ARGENTINA", "INDONESIA", "SWITZERLAND", "NETHERLANDS", "PORTUGAL"},
	},
	CategoryFoods: {
		DifficultyEasy:   {"RICE", "SOUP", "CAKE", "TACO", "PIZZA", "BREAD"},
		DifficultyMedium: {"BURGER", "NOODLES", "OMELET", "FALAFEL", "WAFFLE", "CHEESE"},
		DifficultyHard:   {"SHAWARMA", "LASAGNA", "CROISSANT", "SANDWICH", "PANCAKES", "COUSCOUS"},
	},
	CategoryFruits: {
		DifficultyEasy:   {"FIG", "PEAR", "PLUM", "KIWI", "APPLE", "GRAPE"},
		DifficultyMedium: {"ORANGE", "BANANA", "CHERRY", "MANGO", "PAPAYA", "APRICOT"},
		DifficultyHard:   {"PINEAPPLE", "STRAWBERRY", "WATERMELON", "BLUEBERRY", "POMEGRANATE", "RASPBERRY"},
	},
	CategoryVegetables: {
		DifficultyEasy:   {"PEA", "CORN", "BEET", "KALE", "ONION"},
		DifficultyMedium: {"CARROT", "POTATO", "TOMATO", "RADISH", "CELERY", "SPINACH"},
		DifficultyHard:   {"BROCCOLI", "CUCUMBER", "EGGPLANT", "CAULIFLOWER", "ZUCCHINI", "ARTICHOKE"},
	},
	CategoryColors: {
		DifficultyEasy:   {"RED", "BLUE", "PINK", "GOLD", "GRAY"},
		DifficultyMedium: {"PURPLE", "ORANGE", "YELLOW", "SILVER", "MAROON"},
		DifficultyHard:   {"TURQUOISE", "LAVENDER", "CRIMSON", "MAGENTA", "BURGUNDY"},
	},
	CategorySports: {
		DifficultyEasy:   {"GOLF", "JUDO", "POLO", "SWIM"},
		DifficultyMedium: {"SOCCER", "TENNIS", "BOXING", "HOCKEY", "KARATE", "ROWING"},
		DifficultyHard:   {"BASKETBALL", "VOLLEYBALL", "BADMINTON", "WRESTLING", "GYMNASTICS"},
	},
	CategoryOccupations: {
		DifficultyEasy:   {"CHEF", "COOK", "NURSE", "PILOT", "ACTOR"},
		DifficultyMedium: {"DOCTOR", "LAWYER", "FARMER", "WAITER", "TAILOR", "BARBER"},
		DifficultyHard:   {"ENGINEER", "ARCHITECT", "ELECTRICIAN", "CARPENTER", "JOURNALIST", "SCIENTIST"},
	},
	CategoryActions: {
		DifficultyEasy:   {"RUN", "JUMP", "SWIM", "READ", "SING"},
		DifficultyMedium: {"LISTEN", "TRAVEL", "WHISPER", "STRETCH", "CLIMB"},
		DifficultyHard:   {"CELEBRATE", "NEGOTIATE", "ILLUSTRATE", "EXERCISE", "DISCOVER"},
	},
	CategoryAdjectives: {
		DifficultyEasy:   {"BIG", "COLD", "FAST", "KIND", "TALL"},
		DifficultyMedium: {"BRIGHT", "CLEVER", "GENTLE", "STRONG", "SILENT"},
		DifficultyHard:   {"BEAUTIFUL", "GENEROUS", "MYSTERIOUS", "POWERFUL", "DELICIOUS"},
	},
}
