package users

import (
	"encoding/json"
	"log"
	"os"

	membershipModel "carehub_backend/internals/features/memberships/model"
	orgModel "carehub_backend/internals/features/orgs/model"
	userModel "carehub_backend/internals/features/users/model"

	"gorm.io/gorm"
)

type userSeed struct {
	UserUserName    string  `json:"user_user_name"`
	UserEmail       string  `json:"user_email"`
	UserDisplayName *string `json:"user_display_name"`
	UserFullName    *string `json:"user_full_name"`

	// Nama site + role membership yang di-attach saat seed.
	SiteName string `json:"site_name"`
	SiteRole string `json:"site_role"`
}

// SeedUsersFromJSON — user demo + site membership-nya. Match by email.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ Seed users dilewati, gagal membaca file: %v", err)
		return
	}

	var seeds []userSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON users: %v", err)
	}

	for _, s := range seeds {
		var u userModel.UserModel
		err := db.Where("user_email = ?", s.UserEmail).First(&u).Error
		if err == gorm.ErrRecordNotFound {
			u = userModel.UserModel{
				UserUserName:    s.UserUserName,
				UserEmail:       s.UserEmail,
				UserDisplayName: s.UserDisplayName,
				UserFullName:    s.UserFullName,
				UserIsActive:    true,
			}
			if err := db.Create(&u).Error; err != nil {
				log.Fatalf("❌ Gagal membuat user %s: %v", s.UserEmail, err)
			}
			log.Printf("✅ User %s dibuat", s.UserEmail)
		} else if err != nil {
			log.Fatalf("❌ Gagal cek user %s: %v", s.UserEmail, err)
		} else {
			log.Printf("ℹ️ User %s sudah ada, lewati...", s.UserEmail)
		}

		if s.SiteName == "" || s.SiteRole == "" {
			continue
		}
		var site orgModel.SiteModel
		if err := db.Where("site_name = ?", s.SiteName).First(&site).Error; err != nil {
			log.Printf("⚠️ Site %s belum ada, membership %s dilewati", s.SiteName, s.UserEmail)
			continue
		}
		var existing membershipModel.SiteMembershipModel
		err = db.Where("site_membership_user_id = ? AND site_membership_site_id = ?", u.UserID, site.SiteID).
			First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ Membership %s@%s sudah ada, lewati...", s.UserEmail, s.SiteName)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("❌ Gagal cek membership %s: %v", s.UserEmail, err)
		}
		m := membershipModel.SiteMembershipModel{
			SiteMembershipUserID: u.UserID,
			SiteMembershipSiteID: site.SiteID,
			SiteMembershipRole:   s.SiteRole,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("❌ Gagal membuat membership %s: %v", s.UserEmail, err)
		}
		log.Printf("✅ Membership %s@%s (%s) dibuat", s.UserEmail, s.SiteName, s.SiteRole)
	}
}
