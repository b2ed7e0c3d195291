package orgs

import (
	"encoding/json"
	"log"
	"os"

	"carehub_backend/internals/features/orgs/model"

	"gorm.io/gorm"
)

type orgSeed struct {
	OrgName string `json:"org_name"`
	Sites   []struct {
		SiteName       string `json:"site_name"`
		SiteSessionCap *int   `json:"site_session_cap"`
	} `json:"sites"`
}

// SeedOrgsFromJSON — org + site demo. Match by name; yang sudah ada dilewati.
func SeedOrgsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ Seed orgs dilewati, gagal membaca file: %v", err)
		return
	}

	var seeds []orgSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON orgs: %v", err)
	}

	for _, s := range seeds {
		var org model.OrgModel
		err := db.Where("org_name = ?", s.OrgName).First(&org).Error
		if err == gorm.ErrRecordNotFound {
			org = model.OrgModel{OrgName: s.OrgName}
			if err := db.Create(&org).Error; err != nil {
				log.Fatalf("❌ Gagal membuat org %s: %v", s.OrgName, err)
			}
			log.Printf("✅ Org %s dibuat", s.OrgName)
		} else if err != nil {
			log.Fatalf("❌ Gagal cek org %s: %v", s.OrgName, err)
		} else {
			log.Printf("ℹ️ Org %s sudah ada, lewati...", s.OrgName)
		}

		for _, st := range s.Sites {
			var existing model.SiteModel
			err := db.Where("site_org_id = ? AND site_name = ?", org.OrgID, st.SiteName).
				First(&existing).Error
			if err == nil {
				log.Printf("ℹ️ Site %s sudah ada, lewati...", st.SiteName)
				continue
			}
			if err != gorm.ErrRecordNotFound {
				log.Fatalf("❌ Gagal cek site %s: %v", st.SiteName, err)
			}
			site := model.SiteModel{
				SiteOrgID:      org.OrgID,
				SiteName:       st.SiteName,
				SiteSessionCap: st.SiteSessionCap,
			}
			if err := db.Create(&site).Error; err != nil {
				log.Fatalf("❌ Gagal membuat site %s: %v", st.SiteName, err)
			}
			log.Printf("✅ Site %s dibuat", st.SiteName)
		}
	}
}
