package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestID is the reserved identity that always routes to local-only persistence.
const GuestID = "guest-user"

// GuestEmail is the address shown for the offline profile.
const GuestEmail = "offline@fitflow.ai"

// FeminineGender is the preference label that selects the lighter baseline load.
const FeminineGender = "Feminino"

// ExperienceLevel is the self-reported training experience.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "Iniciante"
	LevelIntermediate ExperienceLevel = "Intermediário"
	LevelAdvanced     ExperienceLevel = "Avançado"
)

// Goal is the primary training goal.
type Goal string

const (
	GoalHypertrophy  Goal = "Hipertrofia"
	GoalFatLoss      Goal = "Emagrecimento"
	GoalStrength     Goal = "Força"
	GoalConditioning Goal = "Condicionamento"
)

// EquipmentPreference restricts which equipment generated plans may use.
type EquipmentPreference string

const (
	EquipmentMachines    EquipmentPreference = "Máquinas"
	EquipmentFreeWeights EquipmentPreference = "Pesos Livres"
	EquipmentBoth        EquipmentPreference = "Ambos"
)

// Preferences drive plan generation. Replaced wholesale on save.
type Preferences struct {
	Age             string              `json:"age"`
	Gender          string              `json:"gender"`
	ExperienceLevel ExperienceLevel     `json:"experienceLevel"`
	SessionDuration int                 `json:"sessionDuration"`
	WeeklyFrequency int                 `json:"weeklyFrequency"`
	Equipment       EquipmentPreference `json:"equipment"`
	Goal            Goal                `json:"goal"`
	FocusMuscles    []string            `json:"focusMuscles"`
	Restrictions    string              `json:"restrictions"`
}

// DefaultPreferences returns the preferences assumed before onboarding.
func DefaultPreferences() Preferences {
	return Preferences{
		Age:             "45-50",
		Gender:          "Masculino",
		ExperienceLevel: LevelIntermediate,
		SessionDuration: 60,
		WeeklyFrequency: 4,
		Equipment:       EquipmentBoth,
		Goal:            GoalHypertrophy,
		FocusMuscles:    []string{"Peito", "Bíceps", "Quadríceps", "Posterior"},
	}
}

// Feminine reports whether the lighter baseline load applies.
func (p *Preferences) Feminine() bool {
	return p != nil && p.Gender == FeminineGender
}

// BodyMetrics holds weight (kg), height (cm) and optional girths (cm).
type BodyMetrics struct {
	Weight      float64    `json:"weight"`
	Height      float64    `json:"height"`
	Chest       *float64   `json:"chest,omitempty"`
	Waist       *float64   `json:"waist,omitempty"`
	Hips        *float64   `json:"hips,omitempty"`
	ArmL        *float64   `json:"armL,omitempty"`
	ArmR        *float64   `json:"armR,omitempty"`
	ThighL      *float64   `json:"thighL,omitempty"`
	ThighR      *float64   `json:"thighR,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// DefaultMetrics returns the metrics of a freshly created profile.
func DefaultMetrics() BodyMetrics {
	return BodyMetrics{Weight: 75, Height: 175}
}

// Profile is the signed-in user. It owns every Plan and Session stored under its ID.
type Profile struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	BirthDate           string       `json:"birthDate,omitempty"`
	Avatar              string       `json:"avatar,omitempty"`
	Level               int          `json:"level"`
	XP                  int          `json:"xp"`
	Metrics             BodyMetrics  `json:"metrics"`
	Preferences         *Preferences `json:"preferences,omitempty"`
	ActivePlanID        string       `json:"activePlanId,omitempty"`
	FavoriteExerciseIDs []string     `json:"favoriteExerciseIds"`
}

// NewProfile builds the default profile for an identity seen for the first time.
func NewProfile(id, email string) Profile {
	prefs := DefaultPreferences()
	name := email
	for i, r := range email {
		if r == '@' {
			name = email[:i]
			break
		}
	}
	return Profile{
		ID:                  id,
		Name:                name,
		Email:               email,
		Level:               1,
		Metrics:             DefaultMetrics(),
		Preferences:         &prefs,
		FavoriteExerciseIDs: []string{},
	}
}

// IsFavorite reports whether a library exercise is in the favorite set.
func (p Profile) IsFavorite(exerciseID string) bool {
	for _, id := range p.FavoriteExerciseIDs {
		if id == exerciseID {
			return true
		}
	}
	return false
}

// NewID returns a fresh identifier for plans, exercises, sets and sessions.
func NewID() string {
	return uuid.NewString()
}
