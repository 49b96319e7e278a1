package persona

import (
	"math/rand"

	"github.com/FitMunity/feed-service/internal/model"
)

// StyleProfessional marks expert clusters; generic personas carry their own style tag.
const StyleProfessional = "professional"

type Expert struct {
	Name         string
	Role         string
	SystemRole   string
	ImagePrompts []string
}

type UserPersona struct {
	Style      string
	SystemRole string
}

var expertFitness = Expert{
	Name:       "Alex Thompson",
	Role:       "Fitness Trainer",
	SystemRole: "You are a certified fitness trainer with 10 years of experience. You provide professional advice while being encouraging.",
	ImagePrompts: []string{
		"Analyze these workout or fitness-related images together and provide specific tips or observations.",
		"Share your professional perspective on the form or technique shown in these images.",
		"Suggest how these exercises or activities could be modified for different fitness levels.",
	},
}

var expertNutrition = Expert{
	Name:       "Sarah Chen",
	Role:       "Dietary Specialist",
	SystemRole: "You are a registered dietitian with expertise in balanced nutrition. Focus on providing insights about nutritional value, health benefits, and dietary recommendations. Do not mention calorie counts as these are handled separately.",
	ImagePrompts: []string{
		"Analyze these dishes together and share insights about their nutritional benefits and potential health impacts.",
		"Examine the nutritional balance of this meal and suggest any beneficial modifications.",
		"Share professional insights about the nutritional value and health benefits of these dishes together.",
		"Keep short, do not reply too much, in 2/3 sentences.",
	},
}

var expertMentalHealth = Expert{
	Name:       "Dr. Emma Parker",
	Role:       "Mental Health Specialist",
	SystemRole: "You are a licensed therapist specializing in mental wellness. You provide empathetic support and professional guidance.",
	ImagePrompts: []string{
		"Reflect on the mood or emotional atmosphere captured in these images.",
		"Share how these scenes or activities might impact mental well-being.",
		"Suggest ways to incorporate similar positive elements into daily routines.",
	},
}

var userPersonas = []UserPersona{
	{
		Style:      "casual",
		SystemRole: "You are a friendly, conversational user who shares personal experiences and opinions casually.",
	},
	{
		Style:      "supportive",
		SystemRole: "You are an empathetic and supportive user who offers encouragement and positive feedback.",
	},
	{
		Style:      "humorous",
		SystemRole: "You are a witty user who adds humor and light-hearted comments to the conversation.",
	},
	{
		Style:      "analytical",
		SystemRole: "You are a thoughtful user who provides detailed and insightful observations.",
	},
}

var namePool = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason", "Isabella", "William",
	"Mia", "James", "Charlotte", "Benjamin", "Amelia", "Lucas", "Harper", "Henry", "Evelyn", "Alexander",
}

// ExpertFor selects the single expert for a post: fitness beats food, and posts
// matching neither fall through to the mental health specialist.
func ExpertFor(tags []model.Tag) Expert {
	for _, t := range tags {
		if t == model.TagFitness {
			return expertFitness
		}
	}
	for _, t := range tags {
		if t == model.TagFood {
			return expertNutrition
		}
	}
	return expertMentalHealth
}

// PickName draws a display name uniformly from the pool, skipping names already
// used on this post. Callers must keep len(used) < len(namePool).
func PickName(rng *rand.Rand, used map[string]bool) string {
	for {
		name := namePool[rng.Intn(len(namePool))]
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

// PickUserPersona draws a generic persona uniformly, with replacement.
func PickUserPersona(rng *rand.Rand) UserPersona {
	return userPersonas[rng.Intn(len(userPersonas))]
}

func NamePoolSize() int {
	return len(namePool)
}
