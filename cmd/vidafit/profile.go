// ABOUTME: CLI commands for the biometric profile.
// ABOUTME: init onboards with a name; set completes calibration; show prints it.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

var (
	profileAge          int
	profileHeight       float64
	profileWeight       float64
	profileTargetWeight float64
	profileGender       string
	profileActivity     string
	profileGoal         string
	profileIntolerances []string
	profileDislikes     []string
	profilePreferred    []string
	profileMealsPerDay  int
	profileWorkoutDays  int
	profileWorkoutTime  int
	profileLocation     string
	profileSplit        string
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage your biometric profile",
}

var profileInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Onboard with your name",
	Long: `Create the profile with just your name. Everything else keeps
sensible defaults until you calibrate with 'profile set'.

Example:
  vidafit profile init "Karen"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}
		if err := trk.SetName(name); err != nil {
			return err
		}
		color.Green("✓ Welcome, %s", name)
		fmt.Println("  Run 'vidafit profile set' to calibrate your biometrics.")
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and mark setup complete",
	Long: `Update biometric and preference fields. Saving marks the profile as
calibrated, which plan generation relies on.

Examples:
  vidafit profile set --age 29 --height 165 --weight 80 --target-weight 68
  vidafit profile set --goal definition --activity intense
  vidafit profile set --intolerance lactose --dislike "fígado"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		p := trk.Profile()

		if profileAge > 0 {
			p.Age = profileAge
		}
		if profileHeight > 0 {
			p.Height = profileHeight
		}
		if profileWeight > 0 {
			p.Weight = profileWeight
		}
		if profileTargetWeight > 0 {
			p.TargetWeight = profileTargetWeight
		}
		if profileGender != "" {
			if !models.IsValidGender(profileGender) {
				return fmt.Errorf("unknown gender: %s (male, female)", profileGender)
			}
			p.Gender = models.Gender(profileGender)
		}
		if profileActivity != "" {
			if !models.IsValidActivityLevel(profileActivity) {
				return fmt.Errorf("unknown activity level: %s (sedentary, light, moderate, intense)", profileActivity)
			}
			p.ActivityLevel = models.ActivityLevel(profileActivity)
		}
		if profileGoal != "" {
			if !models.IsValidGoal(profileGoal) {
				return fmt.Errorf("unknown goal: %s (lose_weight, gain_weight, maintain, eat_healthy, definition)", profileGoal)
			}
			p.Goal = models.Goal(profileGoal)
		}
		if len(profileIntolerances) > 0 {
			p.Intolerances = profileIntolerances
		}
		if len(profileDislikes) > 0 {
			p.Dislikes = profileDislikes
		}
		if len(profilePreferred) > 0 {
			p.PreferredFoods = profilePreferred
		}
		if profileMealsPerDay > 0 {
			p.MealsPerDay = profileMealsPerDay
		}
		if profileWorkoutDays > 0 {
			p.WorkoutDays = profileWorkoutDays
		}
		if profileWorkoutTime > 0 {
			p.WorkoutTime = profileWorkoutTime
		}
		if profileLocation != "" {
			if profileLocation != string(models.LocationHome) && profileLocation != string(models.LocationGym) {
				return fmt.Errorf("unknown workout location: %s (home, gym)", profileLocation)
			}
			p.WorkoutLocation = models.WorkoutLocation(profileLocation)
		}
		if profileSplit != "" {
			if profileSplit != string(models.SplitUpperLower) && profileSplit != string(models.SplitABCD) {
				return fmt.Errorf("unknown split preference: %s (superior_inferior, abcd)", profileSplit)
			}
			p.WorkoutSplitPreference = models.SplitPreference(profileSplit)
		}

		if err := trk.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		color.Green("✓ Profile saved")
		fmt.Println("  Calibration complete. Regenerate your plans to apply it.")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		p := trk.Profile()
		faint := color.New(color.Faint)

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(p.Name))
		if p.Calibrated() {
			color.Green("  calibrated")
		} else {
			color.Yellow("  calibration pending — run 'vidafit profile set'")
		}
		fmt.Printf("  %s %d   %s %.0f cm   %s %.1f kg → %.1f kg\n",
			faint.Sprint("age"), p.Age,
			faint.Sprint("height"), p.Height,
			faint.Sprint("weight"), p.Weight, p.TargetWeight)
		fmt.Printf("  %s %s   %s %s   %s %s\n",
			faint.Sprint("gender"), p.Gender,
			faint.Sprint("activity"), p.ActivityLevel,
			faint.Sprint("goal"), p.Goal)
		fmt.Printf("  %s %d meals/day   %d workout days x %d min (%s, %s)\n",
			faint.Sprint("routine"), p.MealsPerDay, p.WorkoutDays, p.WorkoutTime,
			p.WorkoutLocation, p.WorkoutSplitPreference)
		if len(p.Intolerances) > 0 {
			fmt.Printf("  %s %s\n", faint.Sprint("intolerances"), strings.Join(p.Intolerances, ", "))
		}
		if len(p.Dislikes) > 0 {
			fmt.Printf("  %s %s\n", faint.Sprint("dislikes"), strings.Join(p.Dislikes, ", "))
		}
		if len(p.WeightHistory) > 0 {
			fmt.Println()
			fmt.Println("  Weight history:")
			for _, e := range p.WeightHistory {
				fmt.Printf("    %s  %.1f kg (target %.1f)\n", faint.Sprint(e.Date), e.Weight, e.Target)
			}
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "target weight in kg")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate or intense")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "lose_weight, gain_weight, maintain, eat_healthy or definition")
	profileSetCmd.Flags().StringSliceVar(&profileIntolerances, "intolerance", nil, "food intolerance (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profileDislikes, "dislike", nil, "disliked food (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profilePreferred, "prefer", nil, "preferred food (repeatable)")
	profileSetCmd.Flags().IntVar(&profileMealsPerDay, "meals", 0, "meals per day")
	profileSetCmd.Flags().IntVar(&profileWorkoutDays, "workout-days", 0, "workout days per week")
	profileSetCmd.Flags().IntVar(&profileWorkoutTime, "workout-time", 0, "minutes per workout")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "home or gym")
	profileSetCmd.Flags().StringVar(&profileSplit, "split", "", "superior_inferior or abcd")

	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
