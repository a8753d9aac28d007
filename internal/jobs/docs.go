// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are built on github.com/robfig/cron/v3 and driven through
// JobManager, which the composition root starts after the HTTP server and
// stops on shutdown.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - Runs every minute to fail pending payment
// transactions older than the configured cutoff.
package jobs
