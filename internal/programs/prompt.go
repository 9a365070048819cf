package programs

import (
	"fmt"
	"strings"

	"github.com/2beens/fitquest/internal/musclebalance"
	"github.com/2beens/fitquest/internal/profiles"
)

const systemPrompt = `You are an experienced strength and conditioning coach.
You design safe, progressive multi-week workout programs.
Respond with a single JSON object and nothing else: no prose, no markdown, no code fences.`

const responseShape = `{
  "program_name": "string",
  "weeks": [
    {
      "week": 1,
      "phase": "string, e.g. Foundation",
      "sessions": [
        {
          "day": "Monday",
          "name": "string",
          "warmup_video_query": "short youtube search query for a warm-up",
          "exercises": [
            {"name": "string", "sets": 3, "reps": 10, "rest_seconds": 60, "muscle_groups": ["chest", "arms"]}
          ]
        }
      ]
    }
  ],
  "muscle_balance_target": {"chest": 20, "back": 20, "legs": 25, "shoulders": 10, "arms": 10, "core": 15}
}`

// buildPrompt asks for the whole program in one request.
func buildPrompt(profile *profiles.UserProfile, params Params, weekdays []string) (string, string) {
	groups := make([]string, 0, len(musclebalance.MuscleGroups))
	for _, g := range musclebalance.MuscleGroups {
		groups = append(groups, string(g))
	}

	equipment := "bodyweight only"
	if len(params.Equipment) > 0 {
		equipment = strings.Join(params.Equipment, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d week workout program.\n\n", params.TotalWeeks)

	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- height: %.0f cm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- activity level: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&b, "- fitness goal: %s\n\n", profile.FitnessGoal)

	b.WriteString("Program requirements:\n")
	fmt.Fprintf(&b, "- goal: %s\n", params.Goal)
	fmt.Fprintf(&b, "- %d sessions per week, on: %s\n", params.Frequency, strings.Join(weekdays, ", "))
	fmt.Fprintf(&b, "- each session lasts about %d minutes including the warm-up\n", params.DurationMinutes)
	fmt.Fprintf(&b, "- available equipment: %s\n", equipment)
	fmt.Fprintf(&b, "- every week from 1 to %d must list exactly one session for each of these days\n", params.TotalWeeks)
	b.WriteString("- give each week a training phase name and progress the load across weeks\n")
	fmt.Fprintf(&b, "- tag exercises only with these muscle groups: %s\n", strings.Join(groups, ", "))
	b.WriteString("- muscle_balance_target is the intended share of volume per muscle group in percent, summing to 100\n\n")

	b.WriteString("Use exactly this JSON shape:\n")
	b.WriteString(responseShape)
	b.WriteString("\n")

	return systemPrompt, b.String()
}
