package database

import (
	"log"

	"github.com/google/uuid"
	"github.com/slugspace/slugspace/models"
)

// SeedColleges 写入初始书院数据（已存在时跳过）
func SeedColleges() error {
	var count int64
	if err := DB.Model(&models.College{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	colleges := []models.College{
		{Name: "Cowell College", Tags: models.StringSlice{"social", "outgoing", "traditional"}, Stereotypes: models.StringSlice{"social", "party", "friendly"}},
		{Name: "Stevenson College", Tags: models.StringSlice{"social", "balanced", "humanities"}, Stereotypes: models.StringSlice{"social", "balanced"}},
		{Name: "Crown College", Tags: models.StringSlice{"stem", "academic", "quiet"}, Stereotypes: models.StringSlice{"stem", "studious", "quiet"}},
		{Name: "Merrill College", Tags: models.StringSlice{"quiet", "community", "global"}, Stereotypes: models.StringSlice{"quiet", "tight-knit"}},
		{Name: "Porter College", Tags: models.StringSlice{"arts", "creative", "expressive"}, Stereotypes: models.StringSlice{"creative", "artsy"}},
		{Name: "Kresge College", Tags: models.StringSlice{"activism", "progressive", "community"}, Stereotypes: models.StringSlice{"activist", "progressive"}},
		{Name: "Oakes College", Tags: models.StringSlice{"social justice", "diversity", "community"}, Stereotypes: models.StringSlice{"social justice", "welcoming"}},
		{Name: "Rachel Carson College", Tags: models.StringSlice{"environment", "outdoors", "sustainability"}, Stereotypes: models.StringSlice{"environmental", "outdoorsy"}},
		{Name: "Colleges Nine & Ten", Tags: models.StringSlice{"global", "international", "balanced"}, Stereotypes: models.StringSlice{"international", "balanced"}},
	}

	for i := range colleges {
		colleges[i].ID = uuid.NewString()
	}

	if err := DB.Create(&colleges).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d colleges", len(colleges))
	return nil
}
