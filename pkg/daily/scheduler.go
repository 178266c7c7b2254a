package daily

import (
	"github.com/go-co-op/gocron/v2"

	"tg-hangman-bot/pkg/logger"
)

// StartRotation schedules a midnight rotation of the tracker's
// challenge. The returned scheduler should be shut down on exit. Lazy
// regeneration in Current remains the correctness backstop if the
// process sleeps through midnight.
func StartRotation(tracker *Tracker) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			tracker.Rotate()
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	logger.Info("daily challenge rotation scheduled")
	return scheduler, nil
}
