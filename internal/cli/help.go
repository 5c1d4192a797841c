package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const generalHelp = `# fitloop

Daily self-tracking with a scoring engine: every activity earns or loses
points each day, silent days cost points, and scores never drop below zero.

## Commands

| Command | Description |
|---|---|
| ` + "`record <activity> [--arg value ...]`" + ` | Record an entry for today |
| ` + "`status [--date YYYY-MM-DD]`" + ` | Scores for one day, all activities |
| ` + "`report [week\\|month]`" + ` | Aggregated scores for the current bucket |
| ` + "`fatloss [--date YYYY-MM-DD]`" + ` | Composite diet/exercise/lifestyle view |
| ` + "`history <activity> [--days n]`" + ` | Day-by-day table for one activity |
| ` + "`dashboard`" + ` | Interactive full-screen view |
| ` + "`export <activity> [--out file]`" + ` | Backup one activity as JSON |
| ` + "`import <activity> --file f`" + ` | Restore an activity from a backup |
| ` + "`settle`" + ` | Apply absence penalties through today |
| ` + "`todo [list\\|add\\|done\\|rm]`" + ` | Periodic todos with streaks |
| ` + "`clear <activity>`" + ` | Delete all history for one activity |
| ` + "`activities`" + ` | List every tracked activity |

Run ` + "`fitloop help <activity>`" + ` for per-activity arguments and scoring rules.
`

var activityHelp = map[string]string{
	"workout": `# workout

Record strength-training sets:

    fitloop record workout --exercise squat --reps 10 --weight 60

Each exercise gets a multiplier inverse to its historical average load per
rep, so high-rep light work and low-rep heavy work are comparable. The day's
volume is measured against your best past day: beat it for **+10**, reach
80% for **+5**, 60% for **+2**, below that **-5**. A silent day costs 5.
`,
	"swimming": `# swimming

    fitloop record swimming --distance 1000 --duration 40

Distance counts more when you swim faster: at or above 30 m/min it is worth
1.2x, 25 m/min 1.0x, 20 m/min 0.8x, slower 0.5x. The adjusted distance is
scored against your best past day with the same bands as workout.

Add ` + "`--timer`" + ` to time the swim live; the elapsed minutes fill in
` + "`--duration`" + ` when you press Enter.
`,
	"jumprope": `# jumprope

    fitloop record jumprope --count 1500

Jump counts are scored against your best past day: match it for **+6**,
reach 90% for **+4**, 80% for **+2**, below that **-3**.
`,
	"dietcontrol": `# dietcontrol

    fitloop record dietcontrol --level 2

Judge the day from **-2** (completely off plan) to **+2** (perfectly on).
Each level step is worth 5 points; recording again replaces the earlier
judgement for the day.
`,
	"hunger": `# hunger

    fitloop record hunger --level 1

How well you tolerated hunger, **-2** (overate) to **+2** (comfortably
hungry). Each level step is worth 5 points.
`,
	"hydration": `# hydration

    fitloop record hydration --amount 500

Milliliters accumulate through the day against the configured goal
(default 3000 ml). Reaching the goal earns **+10**, 80% **+5**, half
**+2**, less **-5**. Overshooting the goal does not earn extra.
`,
	"earlysleep": `# earlysleep

    fitloop record earlysleep --bedtime 21:30

In bed before **21:00** earns +10, before **22:00** +5, later costs 5.
`,
	"meditation": `# meditation

    fitloop record meditation --minutes 20

Minutes are scored against your best past day, same bands as workout.
Add ` + "`--timer`" + ` to time the sit live and record the elapsed minutes.
`,
	"worklog": `# worklog

    fitloop record worklog --units 6

Six focused units a day earn **+2**, four earn **+1**, fewer cost 1. A
silent day costs only 1; this stream is deliberately gentle.
`,
	"singing": `# singing

    fitloop record singing --result success

Record whether the day's vocal practice went well: **success** earns +10,
**fail** costs 5. Silent days cost nothing; the score only moves on days
you practice.
`,
}

// PrintHelp renders general or per-activity help, markdown-styled when
// stdout is a terminal.
func PrintHelp(topic string) {
	md := generalHelp
	if topic != "" {
		if page, ok := activityHelp[topic]; ok {
			md = page
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
