package catalog

import "github.com/example/signlearn/pkg/models"

// SeedLessons returns the built-in lesson catalog, used until an imported
// catalog replaces it
func SeedLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:          "basic-1",
			Title:       "Hello & Goodbye",
			Description: "Learn basic greetings in ISL",
			Category:    models.CategoryBasics,
			Difficulty:  "Beginner",
			Duration:    "5 min",
			VideoURL:    "/videos/hello-goodbye.mp4",
		},
		{
			ID:          "basic-2",
			Title:       "Family Signs",
			Description: "Signs for family members",
			Category:    models.CategoryBasics,
			Difficulty:  "Beginner",
			Duration:    "8 min",
			VideoURL:    "/videos/family-signs.mp4",
		},
		{
			ID:          "basic-3",
			Title:       "Numbers 1-10",
			Description: "Learn to count in ISL",
			Category:    models.CategoryBasics,
			Difficulty:  "Beginner",
			Duration:    "6 min",
			VideoURL:    "/videos/numbers.mp4",
		},
		{
			ID:          "inter-1",
			Title:       "Everyday Conversations",
			Description: "Common conversation phrases",
			Category:    models.CategoryIntermediate,
			Difficulty:  "Intermediate",
			Duration:    "12 min",
			VideoURL:    "/videos/conversations.mp4",
		},
		{
			ID:          "inter-2",
			Title:       "Emotions & Feelings",
			Description: "Express emotions through signs",
			Category:    models.CategoryIntermediate,
			Difficulty:  "Intermediate",
			Duration:    "10 min",
			VideoURL:    "/videos/emotions.mp4",
		},
		{
			ID:          "adv-1",
			Title:       "Complex Grammar",
			Description: "Advanced ISL grammar rules",
			Category:    models.CategoryAdvanced,
			Difficulty:  "Advanced",
			Duration:    "15 min",
			VideoURL:    "/videos/grammar.mp4",
		},
	}
}

// SeedResources returns the built-in resource library
func SeedResources() []models.Resource {
	return []models.Resource{
		{
			ID:          1,
			Title:       "ISL Dictionary - Basic Signs",
			Description: "Comprehensive dictionary of basic Indian Sign Language signs with video demonstrations.",
			Category:    "dictionary",
			Difficulty:  "beginner",
			Type:        "video",
			URL:         "/resources/basic-dictionary",
			Thumbnail:   "/images/basic-signs.jpg",
			Duration:    "45 min",
			Downloads:   1250,
			Rating:      4.8,
			Tags:        []string{"basics", "dictionary", "beginner-friendly"},
		},
		{
			ID:          2,
			Title:       "ISL Grammar Rules Guide",
			Description: "Complete guide to Indian Sign Language grammar structure and sentence formation.",
			Category:    "grammar",
			Difficulty:  "intermediate",
			Type:        "pdf",
			URL:         "/resources/grammar-guide.pdf",
			Thumbnail:   "/images/grammar-guide.jpg",
			Duration:    "30 min read",
			Downloads:   980,
			Rating:      4.6,
			Tags:        []string{"grammar", "structure", "intermediate"},
		},
		{
			ID:          3,
			Title:       "Practice Exercises - Family Signs",
			Description: "Interactive practice exercises for learning family-related signs in ISL.",
			Category:    "practice",
			Difficulty:  "beginner",
			Type:        "interactive",
			URL:         "/resources/family-practice",
			Thumbnail:   "/images/family-signs.jpg",
			Duration:    "20 min",
			Downloads:   1500,
			Rating:      4.9,
			Tags:        []string{"family", "practice", "interactive"},
		},
		{
			ID:          4,
			Title:       "Advanced Conversation Patterns",
			Description: "Learn advanced conversation patterns and complex sentence structures in ISL.",
			Category:    "conversation",
			Difficulty:  "advanced",
			Type:        "video",
			URL:         "/resources/advanced-conversations",
			Thumbnail:   "/images/advanced-conv.jpg",
			Duration:    "60 min",
			Downloads:   750,
			Rating:      4.7,
			Tags:        []string{"conversation", "advanced", "patterns"},
		},
		{
			ID:          5,
			Title:       "Regional ISL Variations",
			Description: "Understanding regional differences in Indian Sign Language across different states.",
			Category:    "culture",
			Difficulty:  "intermediate",
			Type:        "article",
			URL:         "/resources/regional-variations",
			Thumbnail:   "/images/regional-isl.jpg",
			Duration:    "25 min read",
			Downloads:   650,
			Rating:      4.5,
			Tags:        []string{"regional", "culture", "variations"},
		},
		{
			ID:          6,
			Title:       "ISL Fingerspelling Master Class",
			Description: "Master the art of fingerspelling in Indian Sign Language with detailed practice sessions.",
			Category:    "fingerspelling",
			Difficulty:  "beginner",
			Type:        "video",
			URL:         "/resources/fingerspelling-master",
			Thumbnail:   "/images/fingerspelling.jpg",
			Duration:    "35 min",
			Downloads:   1100,
			Rating:      4.8,
			Tags:        []string{"fingerspelling", "alphabet", "fundamentals"},
		},
	}
}
