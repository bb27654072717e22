package utils

import (
	"edureg/config"
	"edureg/database"
	"edureg/models"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializePendingDigestScheduler sets up the daily review digest
func InitializePendingDigestScheduler() {
	log.Println("[PENDING-DIGEST] Initializing pending applications digest scheduler...")

	c := cron.New()

	// Run daily at 9 AM to report the pending backlog
	c.AddFunc("0 9 * * *", func() {
		log.Println("[PENDING-DIGEST] Running daily pending digest...")
		SendPendingDigest()
	})

	c.Start()
	log.Println("[PENDING-DIGEST] Digest scheduler started - runs daily at 9 AM")
}

// SendPendingDigest emails the admin the count of applications still pending
// since the previous day
func SendPendingDigest() {
	db := database.Database.Db
	since := now.BeginningOfDay().AddDate(0, 0, -1)

	var count int64
	if err := db.Model(&models.Teacher{}).
		Where("status = ? AND created_at >= ?", models.StatusPending, since).
		Count(&count).Error; err != nil {
		log.Printf("[PENDING-DIGEST] Error counting pending applications: %v", err)
		return
	}

	if count == 0 {
		log.Println("[PENDING-DIGEST] No new pending applications, skipping digest")
		return
	}

	if err := SendPendingDigestEmail(config.AppConfig.AdminEmail, count, since); err != nil {
		log.Printf("[PENDING-DIGEST] Error sending digest: %v", err)
		return
	}
	log.Printf("[PENDING-DIGEST] Sent digest for %d pending applications", count)
}
