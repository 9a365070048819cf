//go:build integration_test || all_tests

package e2e

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/logbook"
	"github.com/2beens/fitquest/internal/musclebalance"
	"github.com/2beens/fitquest/internal/programs"
	"github.com/2beens/fitquest/internal/quests"
	"github.com/2beens/fitquest/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
)

func newUserKey() string {
	return "user-" + gofakeit.UUID()
}

func (s *IntegrationTestSuite) createProfile(userKey string) {
	status, env := call(s.T(), http.MethodPut, "/profile", userKey, map[string]any{
		"heightCm":      180,
		"age":           34,
		"gender":        "male",
		"activityLevel": "moderate",
		"fitnessGoal":   "gain_muscle",
		"timezone":      "UTC",
	})
	s.Require().Equal(http.StatusOK, status, env.Error)
}

func (s *IntegrationTestSuite) TestUnauthorized() {
	status, _ := call(s.T(), http.MethodGet, "/quests/today", "", nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = call(s.T(), http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestQuestDay() {
	t := s.T()
	userKey := newUserKey()
	s.createProfile(userKey)

	status, env := call(t, http.MethodGet, "/quests/today", userKey, nil)
	s.Require().Equal(http.StatusOK, status, env.Error)
	q := decode[quests.QuestResponse](t, env)
	s.False(q.DayCompleted)
	s.Equal(calendar.Format(calendar.Today(time.Now(), time.UTC)), q.Date)

	status, env = call(t, http.MethodPost, "/log/weight", userKey, map[string]any{"weightKg": 81.4})
	s.Require().Equal(http.StatusCreated, status, env.Error)
	status, env = call(t, http.MethodPost, "/log/meals", userKey, map[string]any{
		"description": "oats and eggs",
		"mealType":    "breakfast",
		"calories":    540,
		"proteinG":    32,
	})
	s.Require().Equal(http.StatusCreated, status, env.Error)

	status, env = call(t, http.MethodGet, "/quests/today", userKey, nil)
	s.Require().Equal(http.StatusOK, status)
	q = decode[quests.QuestResponse](t, env)
	s.True(q.WeightLogged)
	s.True(q.MealLogged)
	s.False(q.ExerciseLogged)
	s.False(q.DayCompleted)

	status, env = call(t, http.MethodPost, "/quests/actions", userKey, quests.ActionRequest{Kind: "exercise"})
	s.Require().Equal(http.StatusOK, status, env.Error)
	q = decode[quests.QuestResponse](t, env)
	s.True(q.DayCompleted)
	s.Equal(1, q.StreakDay)

	status, env = call(t, http.MethodGet, "/log/day", userKey, nil)
	s.Require().Equal(http.StatusOK, status, env.Error)
	day := decode[logbook.Day](t, env)
	s.Len(day.Weights, 1)
	s.Len(day.Meals, 1)
	s.Equal(540, day.TotalCalories)

	status, _ = call(t, http.MethodPost, "/quests/actions", userKey, quests.ActionRequest{Kind: "sleep"})
	s.Equal(http.StatusBadRequest, status)
}

// The flag update runs as one SQL statement; it must follow the same rule as DailyQuest.WithAction.
func (s *IntegrationTestSuite) TestQuestFlagsFollowWithAction() {
	t := s.T()
	orders := [][]quests.ActionKind{
		{quests.ActionWeight, quests.ActionMeal, quests.ActionExercise},
		{quests.ActionWeight, quests.ActionExercise, quests.ActionMeal},
		{quests.ActionMeal, quests.ActionWeight, quests.ActionExercise},
		{quests.ActionMeal, quests.ActionExercise, quests.ActionWeight},
		{quests.ActionExercise, quests.ActionWeight, quests.ActionMeal},
		{quests.ActionExercise, quests.ActionMeal, quests.ActionWeight},
		{quests.ActionMeal, quests.ActionMeal, quests.ActionExercise, quests.ActionExercise, quests.ActionWeight, quests.ActionMeal},
	}
	for _, order := range orders {
		userKey := newUserKey()
		s.createProfile(userKey)

		var want quests.DailyQuest
		for _, kind := range order {
			want = want.WithAction(kind)

			status, env := call(t, http.MethodPost, "/quests/actions", userKey, quests.ActionRequest{Kind: string(kind)})
			s.Require().Equal(http.StatusOK, status, env.Error)
			got := decode[quests.QuestResponse](t, env)
			s.Equal(want.WeightLogged, got.WeightLogged, "%v after %s", order, kind)
			s.Equal(want.MealLogged, got.MealLogged, "%v after %s", order, kind)
			s.Equal(want.ExerciseLogged, got.ExerciseLogged, "%v after %s", order, kind)
			s.Equal(want.DayCompleted, got.DayCompleted, "%v after %s", order, kind)
		}
		s.True(want.DayCompleted)
	}
}

func (s *IntegrationTestSuite) TestGenerateAndCompleteProgram() {
	t := s.T()
	userKey := newUserKey()

	today := time.Now().UTC().Weekday().String()
	params := programs.Params{
		Goal:            programs.GoalStrength,
		Frequency:       1,
		Weekdays:        []string{today},
		DurationMinutes: 45,
		Equipment:       []string{"dumbbells"},
		TotalWeeks:      1,
	}

	// no profile yet
	status, _ := call(t, http.MethodPost, "/programs/generate", userKey, params)
	s.Require().Equal(http.StatusNotFound, status)

	s.createProfile(userKey)
	status, env := call(t, http.MethodPost, "/programs/generate", userKey, params)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	result := decode[programs.Result](t, env)
	s.Require().NotZero(result.ProgramID)
	s.Equal("Integration Program", result.Name)
	s.Require().Len(result.Weeks, 1)
	s.Require().Len(result.Weeks[0].Sessions, 1)

	session := result.Weeks[0].Sessions[0]
	s.Equal(workouts.StatusScheduled, session.Status)
	s.Equal("yt-jumping-jacks", session.WarmupVideo)
	s.Require().Len(session.Exercises, 2)
	for _, ex := range session.Exercises {
		s.NotEmpty(ex.VideoID)
	}

	var stored int
	s.Require().NoError(s.DB.QueryRow(`SELECT COUNT(*) FROM workout_exercise e
		JOIN workout_session ws ON ws.id = e.session_id
		WHERE ws.program_id = $1`, result.ProgramID).Scan(&stored))
	s.Equal(2, stored)

	completions := make([]workouts.ExerciseCompletion, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		completions = append(completions, workouts.ExerciseCompletion{ExerciseID: ex.ID, Completed: true})
	}
	difficulty := 3
	status, env = call(t, http.MethodPost, "/sessions/"+strconv.Itoa(session.ID)+"/complete", userKey, workouts.CompleteParams{
		Completions: completions,
		Difficulty:  &difficulty,
	})
	s.Require().Equal(http.StatusOK, status, env.Error)
	completed := decode[workouts.CompletionResult](t, env)
	s.Equal(workouts.StatusCompleted, completed.Session.Status)
	s.Require().NotNil(completed.Balance)
	// push up 3x10 on chest and arms, squat 3x12 on legs
	s.Equal(musclebalance.GroupVolumes{Chest: 30, Arms: 30, Legs: 36}, completed.Balance.Volumes)
	s.Equal(96, completed.Balance.TotalVolume)

	// completing again with only the squat done replaces the record instead of adding to it
	second := make([]workouts.ExerciseCompletion, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		second = append(second, workouts.ExerciseCompletion{ExerciseID: ex.ID, Completed: ex.Name == "Squat"})
	}
	status, env = call(t, http.MethodPost, "/sessions/"+strconv.Itoa(session.ID)+"/complete", userKey, workouts.CompleteParams{
		Completions: second,
	})
	s.Require().Equal(http.StatusOK, status, env.Error)
	recompleted := decode[workouts.CompletionResult](t, env)
	s.Require().NotNil(recompleted.Balance)
	s.Equal(musclebalance.GroupVolumes{Legs: 36}, recompleted.Balance.Volumes)
	s.Equal(36, recompleted.Balance.TotalVolume)

	var records, chest, legs, total int
	s.Require().NoError(s.DB.QueryRow(
		`SELECT COUNT(*), MAX(chest), MAX(legs), MAX(total_volume) FROM muscle_balance WHERE session_id = $1`,
		session.ID,
	).Scan(&records, &chest, &legs, &total))
	s.Equal(1, records)
	s.Equal(0, chest)
	s.Equal(36, legs)
	s.Equal(36, total)

	status, env = call(t, http.MethodGet, "/balance", userKey, nil)
	s.Require().Equal(http.StatusOK, status, env.Error)
	balance := decode[musclebalance.Balance](t, env)
	s.Equal(100.0, balance.Percentages.Legs)
	s.Zero(balance.Percentages.Chest)

	status, env = call(t, http.MethodGet, "/quests/today", userKey, nil)
	s.Require().Equal(http.StatusOK, status)
	s.True(decode[quests.QuestResponse](t, env).ExerciseLogged)

	// another user cannot see the program
	status, _ = call(t, http.MethodGet, "/programs/"+strconv.Itoa(result.ProgramID), newUserKey(), nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestGenerationQuota() {
	t := s.T()
	userKey := newUserKey()
	s.createProfile(userKey)

	params := programs.Params{
		Goal:            programs.GoalGeneralFitness,
		Frequency:       1,
		Weekdays:        []string{time.Now().UTC().Weekday().String()},
		DurationMinutes: 30,
		TotalWeeks:      1,
	}
	for range 2 {
		status, env := call(t, http.MethodPost, "/programs/generate", userKey, params)
		s.Require().Equal(http.StatusCreated, status, env.Error)
	}

	status, _ := call(t, http.MethodPost, "/programs/generate", userKey, params)
	s.Equal(http.StatusTooManyRequests, status)
}
