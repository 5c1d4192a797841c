package app

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/activity/dietcontrol"
	"github.com/gmsas95/fitloop-cli/internal/activity/earlysleep"
	"github.com/gmsas95/fitloop-cli/internal/activity/hunger"
	"github.com/gmsas95/fitloop-cli/internal/activity/hydration"
	"github.com/gmsas95/fitloop-cli/internal/activity/jumprope"
	"github.com/gmsas95/fitloop-cli/internal/activity/meditation"
	"github.com/gmsas95/fitloop-cli/internal/activity/singing"
	"github.com/gmsas95/fitloop-cli/internal/activity/swimming"
	"github.com/gmsas95/fitloop-cli/internal/activity/worklog"
	"github.com/gmsas95/fitloop-cli/internal/activity/workout"
	"github.com/gmsas95/fitloop-cli/internal/config"
)

// RegisterActivities builds every tracked activity and adds it to the
// registry. Order here is display order everywhere.
func RegisterActivities(cfg *config.Config, registry *activity.Registry) error {
	all := []activity.Activity{
		workout.New(),
		swimming.New(),
		jumprope.New(),
		dietcontrol.New(),
		hunger.New(),
		hydration.New(cfg.Tracking.HydrationGoalML),
		earlysleep.New(),
		meditation.New(),
		worklog.New(),
		singing.New(),
	}
	for _, a := range all {
		if err := registry.Register(a); err != nil {
			return err
		}
	}
	return nil
}
