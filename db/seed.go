package db

import (
	_ "embed"
	"log"

	"github.com/pelayanandata/portal-go/models"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed skm_questions.yaml
var skmQuestionsYAML []byte

type skmQuestionSeed struct {
	Code     string `yaml:"code"`
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
	Order    int    `yaml:"order"`
}

// SeedSkmQuestions loads the survey catalog once. The catalog is reference
// data: existing rows are never updated or removed.
func SeedSkmQuestions(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&models.SkmQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var seeds []skmQuestionSeed
	if err := yaml.Unmarshal(skmQuestionsYAML, &seeds); err != nil {
		return err
	}

	questions := make([]models.SkmQuestion, 0, len(seeds))
	for _, s := range seeds {
		questions = append(questions, models.SkmQuestion{
			Code:      s.Code,
			Text:      s.Text,
			Category:  s.Category,
			SortOrder: s.Order,
		})
	}

	if err := gormDB.Create(&questions).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d SKM questions", len(questions))
	return nil
}
