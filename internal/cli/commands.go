// Package cli dispatches the fitloop subcommands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gmsas95/fitloop-cli/internal/app"
	"github.com/gmsas95/fitloop-cli/internal/config"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	"github.com/gmsas95/fitloop-cli/internal/recorder"
	"github.com/gmsas95/fitloop-cli/internal/report"
	"github.com/gmsas95/fitloop-cli/internal/todo"
	"github.com/gmsas95/fitloop-cli/internal/tui"
)

var Version = "dev"

// Run executes one subcommand and returns the process exit code.
func Run(args []string, configPath, dataDir string) int {
	if len(args) == 0 {
		PrintHelp("")
		return 0
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "help", "-h", "--help":
		topic := ""
		if len(rest) > 0 {
			topic = rest[0]
		}
		PrintHelp(topic)
		return 0
	case "version", "--version":
		fmt.Printf("fitloop %s\n", Version)
		return 0
	}

	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	application, err := app.New(cfg, logger, Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	switch command {
	case "record", "add":
		return handleRecord(application, rest)
	case "status":
		return handleStatus(application, rest)
	case "report":
		return handleReport(application, rest)
	case "fatloss":
		return handleFatLoss(application, rest)
	case "history":
		return handleHistory(application, rest)
	case "export":
		return handleExport(application, rest)
	case "import":
		return handleImport(application, rest)
	case "clear":
		return handleClear(application, rest)
	case "settle":
		return handleSettle(application)
	case "todo":
		return handleTodo(application, rest)
	case "dashboard", "dash":
		return handleDashboard(application)
	case "activities", "list":
		return handleActivities(application)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintHelp("")
		return 1
	}
}

// parseArgs splits "--key value" flags from positionals.
func parseArgs(args []string) ([]string, map[string]string) {
	var positional []string
	flags := make(map[string]string)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			key := strings.TrimPrefix(arg, "--")
			if eq := strings.Index(key, "="); eq >= 0 {
				flags[key[:eq]] = key[eq+1:]
				continue
			}
			if i+1 < len(args) {
				flags[key] = args[i+1]
				i++
			} else {
				flags[key] = ""
			}
			continue
		}
		positional = append(positional, arg)
	}
	return positional, flags
}

// timedArg maps the activities that can be timed live to the argument the
// stopped session's minutes fill in.
var timedArg = map[string]string{
	"swimming":   "duration",
	"meditation": "minutes",
}

func handleRecord(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	if len(positional) == 0 {
		fmt.Println("Usage: fitloop record <activity> [--arg value ...]")
		fmt.Println("Run 'fitloop help <activity>' for the activity's arguments.")
		return 1
	}
	name := positional[0]

	if _, ok := flags["timer"]; ok {
		arg, ok := timedArg[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: --timer only works with swimming and meditation\n")
			return 1
		}
		delete(flags, "timer")
		minutes := runTimerSession(os.Stdout, os.Stdin)
		flags[arg] = strconv.FormatFloat(minutes, 'f', 2, 64)
	}

	fb, err := application.RecordInput(name, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("✓ %s recorded  score %.0f", name, fb.Score)
	if fb.Threshold.Message != "" {
		fmt.Printf("  ratio %.2f (%s)", fb.Ratio, fb.Threshold.Message)
		if fb.RatioIncrement > 0 {
			fmt.Printf("  +%.2f this entry", fb.RatioIncrement)
		}
	}
	fmt.Println()
	return 0
}

// runTimerSession times a live session, updating the elapsed readout every
// second, until the user presses Enter. Returns the minutes to record.
func runTimerSession(out io.Writer, in io.Reader) float64 {
	session := recorder.NewSession()
	session.Start(func(elapsed time.Duration) {
		secs := int(elapsed.Seconds())
		fmt.Fprintf(out, "\r  timing  %02d:%02d", secs/60, secs%60)
	})
	fmt.Fprintln(out, "Timer started. Press Enter to stop.")
	bufio.NewReader(in).ReadString('\n')
	session.Stop()
	fmt.Fprintf(out, "\nStopped after %.2f minutes.\n", session.Minutes())
	return session.Minutes()
}

func handleStatus(application *app.App, args []string) int {
	_, flags := parseArgs(args)
	day := datekey.Today()
	if d, ok := flags["date"]; ok {
		if datekey.Parse(d).IsZero() {
			fmt.Fprintf(os.Stderr, "Error: bad date %q, want YYYY-MM-DD\n", d)
			return 1
		}
		day = d
	}

	fmt.Printf("Status for %s\n", day)
	if err := report.DailyStatus(os.Stdout, application.Registry, day); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func handleReport(application *app.App, args []string) int {
	positional, _ := parseArgs(args)
	period := "week"
	if len(positional) > 0 {
		period = positional[0]
	}

	today := datekey.Today()
	switch period {
	case "week":
		week := datekey.WeekOfKey(today)
		fmt.Printf("Report for %s\n", week)
		if err := report.Rollup(os.Stdout, application.Registry, week, "Week"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	case "month":
		month := datekey.MonthOfKey(today)
		fmt.Printf("Report for %s\n", month)
		if err := report.Rollup(os.Stdout, application.Registry, month, "Month"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	default:
		fmt.Println("Usage: fitloop report [week|month]")
		return 1
	}
	return 0
}

func handleFatLoss(application *app.App, args []string) int {
	_, flags := parseArgs(args)
	day := datekey.Today()
	if d, ok := flags["date"]; ok {
		day = d
	}

	metrics := application.FatLoss.MetricsByDate(day)
	if err := report.FatLoss(os.Stdout, metrics); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func handleHistory(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	if len(positional) == 0 {
		fmt.Println("Usage: fitloop history <activity> [--days n]")
		return 1
	}
	act, ok := application.Registry.Get(positional[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown activity: %s\n", positional[0])
		return 1
	}

	n := 14
	if raw, ok := flags["days"]; ok {
		fmt.Sscanf(raw, "%d", &n)
		if n < 1 {
			n = 1
		}
	}

	days := make([]datekey.Key, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, datekey.DaysAgo(i))
	}
	if err := report.History(os.Stdout, act, days); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func handleExport(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	if len(positional) == 0 {
		fmt.Println("Usage: fitloop export <activity> [--out file]")
		return 1
	}
	name := positional[0]

	raw, err := application.ExportActivity(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if out, ok := flags["out"]; ok && out != "" {
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("✓ Exported %s to %s\n", name, out)
		return 0
	}
	fmt.Println(string(raw))
	return 0
}

func handleImport(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	file := flags["file"]
	if len(positional) == 0 || file == "" {
		fmt.Println("Usage: fitloop import <activity> --file backup.json")
		return 1
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	res := application.ImportActivity(positional[0], raw)
	if !res.Success {
		fmt.Fprintf(os.Stderr, "Import failed: %s\n", res.Message)
		return 1
	}
	fmt.Printf("✓ %s\n", res.Message)
	return 0
}

func handleClear(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	if len(positional) == 0 {
		fmt.Println("Usage: fitloop clear <activity> [--yes]")
		return 1
	}
	name := positional[0]

	if _, ok := flags["yes"]; !ok {
		fmt.Printf("This permanently deletes all %s history. Type the activity name to confirm: ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != name {
			fmt.Println("Aborted.")
			return 1
		}
	}

	if err := application.ClearHistory(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("✓ Cleared all %s history\n", name)
	return 0
}

func handleSettle(application *app.App) int {
	if err := application.SettleAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("✓ Settled absence penalties through %s\n", datekey.Today())
	return 0
}

func handleTodo(application *app.App, args []string) int {
	positional, flags := parseArgs(args)
	sub := "list"
	if len(positional) > 0 {
		sub = positional[0]
	}

	switch sub {
	case "list":
		items, err := application.Todos.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if len(items) == 0 {
			fmt.Println("No todos. Add one with 'fitloop todo add --title ... --period daily'.")
			return 0
		}
		if err := report.Todos(os.Stdout, items, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case "add":
		period := todo.Period(flags["period"])
		if period == "" {
			period = todo.PeriodDaily
		}
		item, err := application.Todos.Add(flags["title"], flags["desc"], period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("✓ Added %s todo %q\n", item.Period, item.Title)
		return 0
	case "done":
		item, code := todoByIndex(application, positional[1:])
		if code != 0 {
			return code
		}
		done, err := application.Todos.Complete(item.ID, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("✓ %q done  streak %d  next due %s\n",
			done.Title, done.Streak, done.NextDue.Format("2006-01-02 15:04"))
		return 0
	case "rm":
		item, code := todoByIndex(application, positional[1:])
		if code != 0 {
			return code
		}
		if err := application.Todos.Delete(item.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("✓ Removed %q\n", item.Title)
		return 0
	default:
		fmt.Println("Usage: fitloop todo [list|add --title t --period daily|weekly|monthly|done <n>|rm <n>]")
		return 1
	}
}

// todoByIndex resolves the 1-based list position printed by 'todo list'.
func todoByIndex(application *app.App, args []string) (todo.Todo, int) {
	if len(args) == 0 {
		fmt.Println("Usage: fitloop todo done|rm <n>  (n from 'fitloop todo list')")
		return todo.Todo{}, 1
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(os.Stderr, "Error: bad todo number %q\n", args[0])
		return todo.Todo{}, 1
	}
	items, err := application.Todos.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return todo.Todo{}, 1
	}
	if n > len(items) {
		fmt.Fprintf(os.Stderr, "Error: no todo #%d, only %d listed\n", n, len(items))
		return todo.Todo{}, 1
	}
	return items[n-1], 0
}

func handleDashboard(application *app.App) int {
	if err := application.StartScheduler(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := tui.Run(application.Registry, application.FatLoss); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func handleActivities(application *app.App) int {
	for _, a := range application.Registry.List() {
		fmt.Printf("%-12s %-14s %s\n", a.Name(), a.Title(), a.Description())
	}
	return 0
}
