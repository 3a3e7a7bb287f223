// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// The only job today is BackendHealthJob, which probes the three backend
// systems every 30 seconds and logs the outcome. Jobs are started and
// stopped together through JobManager.
package jobs
