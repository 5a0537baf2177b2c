package store

import (
	"log"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/espectro-app/backend/internal/models"
)

type sampleStory struct {
	content     string
	location    string
	category    string
	isAnonymous bool
}

type sampleUser struct {
	username string
	email    string
	password string
	stories  []sampleStory
}

var sampleUsers = []sampleUser{
	{
		username: "demo_user",
		email:    "demo@example.com",
		password: "demo123",
		stories: []sampleStory{
			{
				content:  "At my grandmother's house in Valparaíso we always heard footsteps on the second floor when nobody was there. One night I saw a white figure pass through the hallway wall. I never went up alone again.",
				location: "Valparaíso, Chile",
				category: "Apparition",
			},
			{
				content:  "I worked night shifts at an old hospital in Santiago. One early morning I saw a nurse in white walking down the third-floor corridor, a floor that has been closed for years. When I followed her, she simply vanished.",
				location: "Santiago, Chile",
				category: "Ghost",
			},
		},
	},
	{
		username: "ghosthunter_cl",
		email:    "hunter@example.com",
		password: "hunt123",
		stories: []sampleStory{
			{
				content:  "During a night investigation at the Punta Arenas cemetery, our EVP recorder picked up a voice saying \"help me\". The chilling part is that nobody else was with us at that moment.",
				location: "Punta Arenas, Chile",
				category: "Psychophony",
			},
		},
	},
	{
		username: "anon_witness",
		email:    "witness@example.com",
		password: "test123",
		stories: []sampleStory{
			{
				content:     "Years ago, driving along Route 5 near Chillán, I saw strange lights floating over the fields. They moved erratically and disappeared instantly. Several truck drivers later confirmed they had seen them too.",
				location:    "Chillán, Chile",
				category:    "UFO",
				isAnonymous: true,
			},
			{
				content:  "The legend of the Caleuche is real. My fisherman grandfather swore he saw it sailing near Chiloé in the middle of the fog. He said you could hear music and laughter coming from the ghost ship.",
				location: "Chiloé, Chile",
				category: "Legend",
			},
			{
				content:     "In the abandoned mine near Copiapó, the old miners say you can hear knocking on the walls and the voices of workmates who died in cave-ins decades ago. Nobody wants the night shift.",
				location:    "Copiapó, Chile",
				category:    "Apparition",
				isAnonymous: true,
			},
		},
	},
}

// extraSeedUsers is how many fabricated accounts interact with the sample
// stories so that feeds, notifications and reports have material.
const extraSeedUsers = 5

// Seed populates an empty database with the demo accounts and stories, plus
// a handful of fabricated users who like, react and comment on them.
// Idempotent: registration failures (already-seeded users) are skipped.
func (s *StoryStore) Seed() {
	for _, su := range sampleUsers {
		if !s.Register(su.username, su.email, su.password) {
			continue
		}
		user := s.Authenticate(su.username, su.password)
		if user == nil {
			continue
		}
		for _, story := range su.stories {
			location := story.location
			if _, ok := s.CreateStory(user.ID, story.content, &location, story.category, story.isAnonymous, nil); !ok {
				log.Printf("seed: story for %s not created", su.username)
			}
		}
	}

	stories := s.Feed(50, 0)
	if len(stories) == 0 {
		return
	}

	gofakeit.Seed(42)
	kinds := []string{models.ReactionFear, models.ReactionSurprise, models.ReactionDisbelief}
	for i := 0; i < extraSeedUsers; i++ {
		username := gofakeit.Username()
		password := gofakeit.Password(true, true, true, false, false, 10)
		if !s.Register(username, gofakeit.Email(), password) {
			continue
		}
		user := s.Authenticate(username, password)
		if user == nil {
			continue
		}
		for _, story := range stories {
			if gofakeit.Bool() {
				s.AddLike(story.ID, user.ID)
			}
			if gofakeit.Bool() {
				s.AddReaction(story.ID, user.ID, kinds[gofakeit.Number(0, len(kinds)-1)])
			}
			if gofakeit.Number(0, 3) == 0 {
				s.AddComment(story.ID, user.ID, gofakeit.Sentence(8))
			}
		}
	}

	log.Printf("seed: %d sample users, %d stories, %d extra users",
		len(sampleUsers), len(stories), extraSeedUsers)
}
