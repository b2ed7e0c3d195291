package seeds

import (
	orgs "carehub_backend/internals/seeds/orgs"
	users "carehub_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data demo untuk environment development.
// Semua seed idempotent: row yang sudah ada dilewati, aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	orgs.SeedOrgsFromJSON(db, "internals/seeds/orgs/data_orgs.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
