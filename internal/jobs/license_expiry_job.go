// Package jobs contains the scheduled background jobs of the application.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"transport/internal/core/application/usecases/drivers"
	"transport/internal/core/domain/model/driver"

	"github.com/robfig/cron/v3"
)

// expiryWarnWindow is how far ahead the report looks for licenses about
// to expire.
const expiryWarnWindow = 30 * 24 * time.Hour

// LicenseExpiryJob reports drivers whose licenses are expired or about
// to expire. Runs daily at 06:00.
type LicenseExpiryJob struct {
	handler drivers.GetAllDriversQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLicenseExpiryJob creates the daily license expiry report job.
func NewLicenseExpiryJob(handler drivers.GetAllDriversQueryHandler, logger *slog.Logger) *LicenseExpiryJob {
	return &LicenseExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "license_expiry_job"),
	}
}

// Start schedules the job and runs one report immediately so operators
// see the state right after startup.
func (j *LicenseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "License expiry job started (running daily at 06:00)")

	go j.run()
	return nil
}

// Stop stops the license expiry job.
func (j *LicenseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "License expiry job stopped")
}

func (j *LicenseExpiryJob) run() {
	ctx := context.Background()
	query := drivers.NewGetAllDriversQuery("", driver.StatusUnknown, false)

	result, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "License expiry report failed", "error", err)
		return
	}

	deadline := time.Now().Add(expiryWarnWindow)
	expired, expiring := 0, 0

	for _, drv := range result {
		// A license expiring today is still valid, matching the driver's
		// own inclusive date comparison.
		switch {
		case !drv.HasValidLicense:
			expired++
			j.logger.WarnContext(ctx, "Driver license expired",
				"driver", drv.FullName,
				"licenseNumber", drv.LicenseNumber,
				"expiredAt", drv.LicenseExpiryDate)
		case drv.LicenseExpiryDate.Before(deadline):
			expiring++
			j.logger.WarnContext(ctx, "Driver license expires soon",
				"driver", drv.FullName,
				"licenseNumber", drv.LicenseNumber,
				"expiresAt", drv.LicenseExpiryDate)
		}
	}

	j.logger.InfoContext(ctx, "License expiry report completed",
		"drivers", len(result), "expired", expired, "expiringSoon", expiring)
}
