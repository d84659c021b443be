package models

import "time"

// ExerciseLog summarizes one exercise of a finished day.
type ExerciseLog struct {
	Name        string  `json:"name"`
	EnglishName string  `json:"englishName"`
	MaxWeight   float64 `json:"maxWeight"`
	Volume      float64 `json:"volume"`
}

// Session is the immutable record of one finished day. History is kept most
// recent first.
type Session struct {
	ID             string        `json:"id"`
	Date           time.Time     `json:"date"`
	DayLabel       string        `json:"dayLabel"`
	DayDescription string        `json:"dayDescription"`
	TotalSets      int           `json:"totalSets"`
	CompletedSets  int           `json:"completedSets"`
	ExerciseCount  int           `json:"exerciseCount"`
	TotalVolume    float64       `json:"totalVolume"`
	ExerciseLogs   []ExerciseLog `json:"exerciseLogs"`
}
