package jobs

import (
	"log"
	"time"

	"pokernight/database"
	"pokernight/models"
)

// StartSessionSweeper periodically deletes expired sessions so the table
// does not grow without bound.
func StartSessionSweeper() {
	ticker := time.NewTicker(10 * time.Minute)
	go func() {
		for {
			<-ticker.C
			result := database.DB.
				Where("expires_at < ?", time.Now()).
				Delete(&models.Session{})

			if result.Error != nil {
				log.Println("❌ Failed to delete expired sessions:", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("✅ Deleted %d expired sessions\n", result.RowsAffected)
			}
		}
	}()
}
