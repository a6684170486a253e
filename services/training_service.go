package services

import "fmt"

// MuscleGroup is one entry of the training guide: what the muscle does and
// how to train it, with a demo video.
type MuscleGroup struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Exercises   []string `json:"exercises"`
	VideoURL    string   `json:"video_url"`
}

func videoURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// muscleGuide is static content; the guide ships with the app and has no
// per-user state.
var muscleGuide = []MuscleGroup{
	{Key: "traps", Name: "Trapezius", Description: "Upper back and neck muscles, key to shoulder elevation movements.", Exercises: []string{"Shrugs", "Face pull", "Incline lateral raises"}, VideoURL: videoURL("v_NI0G5gH1E")},
	{Key: "delts", Name: "Deltoids", Description: "Shoulder muscles with three heads (front, side, rear).", Exercises: []string{"Overhead press", "Lateral raises", "Rear delt fly"}, VideoURL: videoURL("3R14MnZbcpw")},
	{Key: "chest", Name: "Chest", Description: "Pushing muscles of the torso.", Exercises: []string{"Bench press", "Dumbbell fly", "Push-ups", "Dips"}, VideoURL: videoURL("gRVjAtPip0Y")},
	{Key: "biceps", Name: "Biceps", Description: "Front of the upper arm, flexes the elbow.", Exercises: []string{"Dumbbell curl", "Barbell curl", "Hammer curl"}, VideoURL: videoURL("ykJmrZ5v0Oo")},
	{Key: "triceps", Name: "Triceps", Description: "Back of the upper arm, extends the elbow.", Exercises: []string{"Overhead extensions", "Dips", "Skull crushers"}, VideoURL: videoURL("6SS6K3lAwZ8")},
	{Key: "abs", Name: "Abdominals", Description: "Core group: rectus, obliques and transverse.", Exercises: []string{"Crunch", "Plank", "Leg raises", "Russian twist"}, VideoURL: videoURL("2pLT-olgUJs")},
	{Key: "lats", Name: "Lats", Description: "Large back muscles that build the V shape.", Exercises: []string{"Pull-ups", "Barbell row", "Pulldown"}, VideoURL: videoURL("CAwf7n6Luuc")},
	{Key: "lowerback", Name: "Lower back", Description: "Posture muscles of the lumbar region.", Exercises: []string{"Back extensions", "Good morning", "Superman"}, VideoURL: videoURL("ph3pddpKzzw")},
	{Key: "glutes", Name: "Glutes", Description: "Among the most powerful muscles in the body.", Exercises: []string{"Squat", "Hip thrust", "Lunges", "Donkey kick"}, VideoURL: videoURL("Zp26q4BY5HE")},
	{Key: "quads", Name: "Quadriceps", Description: "Front of the thigh, the strongest muscle group.", Exercises: []string{"Squat", "Leg press", "Lunges", "Leg extension"}, VideoURL: videoURL("D7KaRcUTQeE")},
	{Key: "hamstrings", Name: "Hamstrings", Description: "Back of the thigh, flexes the knee.", Exercises: []string{"Leg curl", "Romanian deadlift", "Good morning"}, VideoURL: videoURL("2SHsk9AzdjA")},
	{Key: "calves", Name: "Calves", Description: "Gastrocnemius and soleus of the lower leg.", Exercises: []string{"Calf raises", "Jump rope"}, VideoURL: videoURL("T3WZRjnkZbU")},
}

// ListMuscleGroups returns the full guide.
func ListMuscleGroups() []MuscleGroup {
	return muscleGuide
}

// GetMuscleGroup looks one group up by key.
func GetMuscleGroup(key string) (*MuscleGroup, error) {
	for i := range muscleGuide {
		if muscleGuide[i].Key == key {
			return &muscleGuide[i], nil
		}
	}
	return nil, fmt.Errorf("unknown muscle group %q", key)
}
