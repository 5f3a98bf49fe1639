package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"watchtrainer/internal/bootstrap"
	feeddto "watchtrainer/internal/modules/feed/dto"
	"watchtrainer/internal/platform/config"
	"watchtrainer/internal/platform/logging"
)

type rootOptions struct {
	dataDir    string
	configPath string
	jsonOut    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "watchtrainer",
		Short:         "Wearable workout companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data>/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(newWorkoutCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newFeedCmd(opts))
	root.AddCommand(newWeatherCmd(opts))
	root.AddCommand(newPlacesCmd(opts))
	root.AddCommand(newCoachCmd(opts))
	root.AddCommand(newJournalCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

func defaultDataDir() string {
	if v := os.Getenv("WATCHTRAINER_DATA"); v != "" {
		return v
	}
	return "."
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	return config.Load(opts.dataDir, opts.configPath)
}

// withApp builds the application for one command and tears it down afterwards.
func withApp(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logCloser, err := logging.Setup(logging.Params{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		JSON:   cfg.Log.JSON,
		Stdout: cfg.Log.Stdout,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.WithError(err).Warn("close app")
		}
	}()
	return fn(ctx, app)
}

func emit(cmd *cobra.Command, opts *rootOptions, payload any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	text(w)
	return nil
}

func formatDuration(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Second).String()
}

func newWorkoutCmd(opts *rootOptions) *cobra.Command {
	workout := &cobra.Command{Use: "workout", Short: "Control the workout session"}

	transition := func(use, short string, run func(ctx context.Context, app *bootstrap.App) (any, string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
					out, line, err := run(ctx, app)
					if err != nil {
						return err
					}
					return emit(cmd, opts, out, func(w io.Writer) { _, _ = fmt.Fprintln(w, line) })
				})
			},
		}
	}

	workout.AddCommand(transition("start", "Start a workout of the selected type", func(ctx context.Context, app *bootstrap.App) (any, string, error) {
		out, err := app.WorkoutCLI.Start(ctx)
		return out, fmt.Sprintf("started %s session %s", out.WorkoutType, out.ID), err
	}))
	workout.AddCommand(transition("stop", "Pause the active workout", func(ctx context.Context, app *bootstrap.App) (any, string, error) {
		out, err := app.WorkoutCLI.Stop(ctx)
		return out, fmt.Sprintf("paused %s after %s", out.WorkoutType, formatDuration(out.ElapsedMS)), err
	}))
	workout.AddCommand(transition("resume", "Resume a paused workout", func(ctx context.Context, app *bootstrap.App) (any, string, error) {
		out, err := app.WorkoutCLI.Resume(ctx)
		return out, fmt.Sprintf("resumed %s", out.WorkoutType), err
	}))

	var notes string
	endCmd := &cobra.Command{
		Use:   "end",
		Short: "Finish the workout and record it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.WorkoutCLI.End(ctx, notes)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "recorded %s: %s, %d steps, avg %d bpm, %.0f kcal\n",
						out.WorkoutType, formatDuration(out.DurationMS), out.TotalSteps, out.AverageHR, out.CaloriesBurned)
					for _, goal := range out.CompletedGoals {
						_, _ = fmt.Fprintf(w, "goal completed: %s\n", goal)
					}
					if out.GoalsStale {
						_, _ = fmt.Fprintln(w, "goal progress not updated, run `watchtrainer goal refresh`")
					}
					if out.JournalPath != "" {
						_, _ = fmt.Fprintf(w, "journal: %s\n", out.JournalPath)
					}
				})
			})
		},
	}
	endCmd.Flags().StringVar(&notes, "notes", "", "notes stored with the session")
	workout.AddCommand(endCmd)

	workout.AddCommand(&cobra.Command{
		Use:   "type <walking|running|cycling|strength|yoga|other>",
		Short: "Select the workout type for the next session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.WorkoutCLI.SetType(ctx, args[0])
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) { _, _ = fmt.Fprintf(w, "selected %s\n", out.SelectedType) })
			})
		},
	})

	workout.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the workout state and live readings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.WorkoutCLI.Status(ctx)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "state=%s type=%s\n", out.State, out.SelectedType)
					if out.Session != nil {
						_, _ = fmt.Fprintf(w, "session=%s elapsed=%s\n", out.Session.ID, formatDuration(out.Session.ElapsedMS))
					}
					_, _ = fmt.Fprintf(w, "steps=%d hr=%d kcal=%.0f distance=%.0fm\n",
						out.Snapshot.Steps, out.Snapshot.HeartRate, out.Snapshot.Calories, out.Snapshot.Distance)
				})
			})
		},
	})
	return workout
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage fitness goals"}

	var deadline string
	createCmd := &cobra.Command{
		Use:   "create <type> <target>",
		Short: "Create a goal, e.g. goal create daily_steps 8000",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("target must be a number: %w", err)
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				var due *time.Time
				if deadline != "" {
					t, err := time.ParseInLocation(time.DateOnly, deadline, app.Config.Location)
					if err != nil {
						return fmt.Errorf("--deadline must be YYYY-MM-DD: %w", err)
					}
					due = &t
				}
				out, err := app.GoalCLI.Create(ctx, args[0], target, due)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) { _, _ = fmt.Fprintf(w, "created goal %d: %s %s\n", out.ID, out.Type, out.Summary) })
			})
		},
	}
	createCmd.Flags().StringVar(&deadline, "deadline", "", "deadline date (YYYY-MM-DD)")
	goal.AddCommand(createCmd)

	var all bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				goals, err := app.GoalCLI.List(ctx, all)
				if err != nil {
					return err
				}
				return emit(cmd, opts, goals, func(w io.Writer) {
					if len(goals) == 0 {
						_, _ = fmt.Fprintln(w, "no goals")
						return
					}
					for _, g := range goals {
						status := "active"
						if !g.Active {
							status = "done"
						}
						_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%.0f%%\t%s\n", g.ID, g.Type, g.Summary, g.Progress*100, status)
					}
				})
			})
		},
	}
	listCmd.Flags().BoolVar(&all, "all", false, "include completed goals")
	goal.AddCommand(listCmd)

	goal.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Recompute goal progress from recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Refresh(ctx)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "refreshed %d goals\n", len(out.Goals))
					for _, g := range out.Completed {
						_, _ = fmt.Fprintf(w, "completed: %s %s\n", g.Type, g.Summary)
					}
				})
			})
		},
	})
	return goal
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Workout statistics"}

	var period string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Totals for a period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StatsCLI.Show(ctx, period)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "%s: %d workouts, %d steps, %.0f kcal, %s total, %s average, mostly %s\n",
						out.Period, out.TotalWorkouts, out.TotalSteps, out.TotalCalories,
						formatDuration(out.TotalDurationMS), formatDuration(out.AverageDurationMS), out.MostFrequentType)
				})
			})
		},
	}
	showCmd.Flags().StringVar(&period, "period", "today", "today|week|month|all_time")
	stats.AddCommand(showCmd)

	stats.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Per-day progress for the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				days, err := app.StatsCLI.Week(ctx)
				if err != nil {
					return err
				}
				return emit(cmd, opts, days, func(w io.Writer) {
					for _, d := range days {
						_, _ = fmt.Fprintf(w, "%s %s\t%d steps\t%.0f kcal\t%d min\t%d workouts\n",
							d.Weekday, d.Date.Format(time.DateOnly), d.Steps, d.Calories, d.ActiveMinutes, d.Workouts)
					}
				})
			})
		},
	})
	return stats
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Recorded sessions"}

	var days int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				until := time.Now().In(app.Config.Location)
				sessions, err := app.HistoryCLI.List(ctx, until.AddDate(0, 0, -days), until)
				if err != nil {
					return err
				}
				return emit(cmd, opts, sessions, func(w io.Writer) {
					if len(sessions) == 0 {
						_, _ = fmt.Fprintln(w, "no sessions")
						return
					}
					for _, s := range sessions {
						_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d steps\t%.0f kcal\n",
							s.StartTime.Format("2006-01-02 15:04"), s.WorkoutType, formatDuration(s.DurationMS), s.TotalSteps, s.CaloriesBurned)
					}
				})
			})
		},
	}
	listCmd.Flags().IntVar(&days, "days", 30, "how many days back to list")
	history.AddCommand(listCmd)
	return history
}

func newFeedCmd(opts *rootOptions) *cobra.Command {
	feed := &cobra.Command{Use: "feed", Short: "Live health readings"}

	var input feeddto.SnapshotInput
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Record a health snapshot, as a device sync would",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FeedCLI.Push(ctx, input)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "recorded steps=%d hr=%d at %s\n", out.Steps, out.HeartRate, out.UpdatedAt.Format(time.Kitchen))
				})
			})
		},
	}
	pushCmd.Flags().IntVar(&input.Steps, "steps", 0, "steps today")
	pushCmd.Flags().IntVar(&input.HeartRate, "heart-rate", 0, "heart rate in bpm")
	pushCmd.Flags().Float64Var(&input.Calories, "calories", 0, "calories today (kcal)")
	pushCmd.Flags().Float64Var(&input.Distance, "distance", 0, "distance today (m)")
	pushCmd.Flags().IntVar(&input.ActiveMinutes, "active-minutes", 0, "active minutes today")
	feed.AddCommand(pushCmd)

	feed.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the latest snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FeedCLI.Show(ctx)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "steps=%d hr=%d kcal=%.0f distance=%.0fm active=%dmin\n",
						out.Steps, out.HeartRate, out.Calories, out.Distance, out.ActiveMinutes)
				})
			})
		},
	})
	return feed
}

func newWeatherCmd(opts *rootOptions) *cobra.Command {
	weather := &cobra.Command{Use: "weather", Short: "Current weather"}
	weather.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Fetch current conditions and a workout recommendation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.WeatherCLI.Show(ctx)
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					_, _ = fmt.Fprintf(w, "%s: %.1f°C (feels %.1f°C), %s, humidity %d%%, wind %.1f m/s\n",
						out.City, out.Temperature, out.FeelsLike, out.Description, out.Humidity, out.WindSpeed)
					_, _ = fmt.Fprintln(w, out.Recommendation)
				})
			})
		},
	})
	return weather
}

func newPlacesCmd(opts *rootOptions) *cobra.Command {
	places := &cobra.Command{Use: "places", Short: "Workout venue suggestions"}
	places.AddCommand(&cobra.Command{
		Use:   "suggest <workout-type>",
		Short: "Suggest venues for a workout type given the weather",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.PlacesCLI.Suggest(ctx, args[0])
				if err != nil {
					return err
				}
				return emit(cmd, opts, out, func(w io.Writer) {
					where := "outdoor"
					if out.Indoor {
						where = "indoor"
					}
					_, _ = fmt.Fprintf(w, "%s, %s venues: %v\n", out.Weather, where, out.VenueTypes)
					for _, p := range out.Places {
						_, _ = fmt.Fprintf(w, "- %s (%s): %s\n", p.Name, p.Address, p.Reason)
					}
				})
			})
		},
	})
	return places
}

func newCoachCmd(opts *rootOptions) *cobra.Command {
	coach := &cobra.Command{Use: "coach", Short: "Coaching messages"}
	say := func(cmd *cobra.Command, text string, payload any) error {
		return emit(cmd, opts, payload, func(w io.Writer) { _, _ = fmt.Fprintln(w, text) })
	}

	coach.AddCommand(&cobra.Command{
		Use:   "message",
		Short: "A message for the current workout state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CoachCLI.Message(ctx)
				if err != nil {
					return err
				}
				return say(cmd, out.Text, out)
			})
		},
	})
	coach.AddCommand(&cobra.Command{
		Use:   "tip [workout-type]",
		Short: "A tip for a workout type (default: the selected type)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workoutType := ""
			if len(args) == 1 {
				workoutType = args[0]
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CoachCLI.Tip(ctx, workoutType)
				if err != nil {
					return err
				}
				return say(cmd, out.Text, out)
			})
		},
	})
	coach.AddCommand(&cobra.Command{
		Use:   "quote",
		Short: "A motivational quote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CoachCLI.Quote(ctx)
				if err != nil {
					return err
				}
				return say(cmd, out.Text, out)
			})
		},
	})
	return coach
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, feed watcher and weather poller",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				return app.Serve(ctx)
			})
		},
	}
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(ctx, app)
			})
		},
	}
}
