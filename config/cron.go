package config

import (
	"bazar.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogreload": {Schedule: "0 * * * *", Job: jobs.CatalogReloadJob},
	"cartprune":     {Schedule: "@daily", Job: jobs.CartPruneJob},
	// Add more jobs here
}
